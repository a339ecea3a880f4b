package controller

import (
	"errors"

	"ai-counselor-be/internal/constant"
	"ai-counselor-be/internal/dto"
	"ai-counselor-be/internal/pkg/serverutils"
	"ai-counselor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	SuggestedQuestions(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Sessions(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	sessions    *serverutils.SessionManager
}

func NewChatController(chatService service.IChatService, sessions *serverutils.SessionManager) IChatController {
	return &chatController{
		chatService: chatService,
		sessions:    sessions,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api")
	h.Post("/chat", c.SendChat)
	h.Get("/suggested-questions", c.SuggestedQuestions)
	h.Get("/history", c.History)
	h.Get("/sessions", c.Sessions)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	userId, ok := c.sessions.CurrentUserID(ctx)
	if !ok {
		return serverutils.ErrorResponse(ctx, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	sessionId := c.sessions.ActiveChatSession(ctx)
	if sessionId == "" {
		created, err := c.chatService.CreateSession(ctx.Context(), userId)
		if err != nil {
			return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "could not open a chat session")
		}
		sessionId = created
		_ = c.sessions.SetActiveChatSession(ctx, sessionId)
	}

	res, err := c.chatService.SendChat(ctx.Context(), userId, sessionId, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "Message is empty")
		}
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "could not process the message")
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, res)
}

func (c *chatController) SuggestedQuestions(ctx *fiber.Ctx) error {
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, constant.SuggestedQuestions)
}

// History returns the active session's transcript. Unauthenticated callers
// get an empty list rather than an error, the chat page polls this before
// login state is known.
func (c *chatController) History(ctx *fiber.Ctx) error {
	userId, ok := c.sessions.CurrentUserID(ctx)
	if !ok {
		return serverutils.SuccessResponse(ctx, fiber.StatusOK, []dto.ChatHistoryItem{})
	}

	sessionId := c.sessions.ActiveChatSession(ctx)
	if sessionId == "" {
		return serverutils.SuccessResponse(ctx, fiber.StatusOK, []dto.ChatHistoryItem{})
	}

	history, err := c.chatService.GetChatHistory(ctx.Context(), sessionId, userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "could not load history")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, history)
}

func (c *chatController) Sessions(ctx *fiber.Ctx) error {
	userId, ok := c.sessions.CurrentUserID(ctx)
	if !ok {
		return serverutils.SuccessResponse(ctx, fiber.StatusOK, []dto.ChatSessionItem{})
	}

	sessions, err := c.chatService.GetUserSessions(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "could not load sessions")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, sessions)
}
