package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ai-counselor-be/internal/constant"
	"ai-counselor-be/internal/dto"
	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/pkg/logger"
	"ai-counselor-be/internal/repository/specification"
	"ai-counselor-be/internal/repository/unitofwork"
	"ai-counselor-be/pkg/events"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context, userId uint) (string, error)
	LatestOrCreateSession(ctx context.Context, userId uint) (string, error)
	GetUserSessions(ctx context.Context, userId uint) ([]dto.ChatSessionItem, error)
	GetChatHistory(ctx context.Context, sessionId string, userId uint) ([]dto.ChatHistoryItem, error)
	SendChat(ctx context.Context, userId uint, sessionId, message string) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	counselorService ICounselorService
	publisherService IPublisherService
	log              logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	counselorService ICounselorService,
	publisherService IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		counselorService: counselorService,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uint) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.NewString(),
		UserId:    userId,
		Name:      constant.DefaultChatSessionName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return "", err
	}
	return session.Id, nil
}

// LatestOrCreateSession returns the user's most recently active session,
// creating one when the user has none yet.
func (s *chatService) LatestOrCreateSession(ctx context.Context, userId uint) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderByUpdatedAtDesc{},
	)
	if err != nil {
		return "", err
	}
	if len(sessions) > 0 {
		return sessions[0].Id, nil
	}
	return s.CreateSession(ctx, userId)
}

func (s *chatService) GetUserSessions(ctx context.Context, userId uint) ([]dto.ChatSessionItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderByUpdatedAtDesc{},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatSessionItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, dto.ChatSessionItem{
			SessionId:   session.Id,
			SessionName: session.Name,
			CreatedAt:   session.CreatedAt,
			UpdatedAt:   session.UpdatedAt,
		})
	}
	return items, nil
}

func (s *chatService) GetChatHistory(ctx context.Context, sessionId string, userId uint) ([]dto.ChatHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A session the user does not own reads as an empty transcript, the same
	// as a session that never existed.
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.SessionByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return []dto.ChatHistoryItem{}, nil
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderByCreatedAtAsc{},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatHistoryItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, dto.ChatHistoryItem{
			Type:      msg.Role,
			Text:      msg.Text,
			Timestamp: msg.CreatedAt,
		})
	}
	return items, nil
}

// SendChat runs one full exchange: persist the question, generate the
// answer, persist it, bump the session, and emit a usage event. An empty
// message fails before anything is written.
func (s *chatService) SendChat(ctx context.Context, userId uint, sessionId, message string) (*dto.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	started := time.Now()

	userMessage := &entity.ChatMessage{
		SessionId: sessionId,
		UserId:    userId,
		Role:      entity.ChatMessageRoleUser,
		Text:      message,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	answer := s.counselorService.Answer(ctx, message)

	assistantMessage := &entity.ChatMessage{
		SessionId: sessionId,
		UserId:    userId,
		Role:      entity.ChatMessageRoleAssistant,
		Text:      answer,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	if err := uow.ChatSessionRepository().Touch(ctx, sessionId); err != nil {
		s.log.Warn("CHAT", "Failed to bump session activity", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}

	s.publishExchange(ctx, sessionId, userId, len(message), len(answer), time.Since(started))

	return &dto.ChatResponse{
		Response:  answer,
		SessionId: sessionId,
	}, nil
}

func (s *chatService) publishExchange(ctx context.Context, sessionId string, userId uint, questionLen, answerLen int, elapsed time.Duration) {
	if s.publisherService == nil {
		return
	}

	evt := events.ChatExchangeEvent{
		Type:           events.TypeChatExchange,
		SessionId:      sessionId,
		UserId:         userId,
		QuestionLength: questionLen,
		AnswerLength:   answerLen,
		DurationMs:     elapsed.Milliseconds(),
		OccurredAt:     time.Now(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	// Usage accounting is auxiliary, a publish failure never fails the chat.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("CHAT", "Failed to publish chat exchange event", map[string]interface{}{"error": err.Error()})
	}
}
