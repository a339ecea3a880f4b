package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/pkg/logger"
	"ai-counselor-be/internal/repository/unitofwork"
	"ai-counselor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload events.ChatExchangeEvent
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		cs.log.Error("CONSUMER", "Failed to unmarshal chat exchange event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.Type != events.TypeChatExchange {
		cs.log.Warn("CONSUMER", "Skipping event of unexpected type", map[string]interface{}{"type": payload.Type})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	record := &entity.UsageRecord{
		Level:   "INFO",
		Module:  "CHAT",
		Message: "chat exchange completed",
		Details: map[string]interface{}{
			"session_id":      payload.SessionId,
			"user_id":         payload.UserId,
			"question_length": payload.QuestionLength,
			"answer_length":   payload.AnswerLength,
			"duration_ms":     payload.DurationMs,
		},
		CreatedAt: time.Now(),
	}

	if err := uow.UsageRecordRepository().Create(ctx, record); err != nil {
		cs.log.Error("CONSUMER", "Failed to persist usage record", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	msg.Ack()
}
