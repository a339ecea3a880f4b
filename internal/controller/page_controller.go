package controller

import (
	"ai-counselor-be/internal/pkg/serverutils"
	"ai-counselor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Landing(ctx *fiber.Ctx) error
	About(ctx *fiber.Ctx) error
	Contact(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type pageController struct {
	chatService service.IChatService
	sessions    *serverutils.SessionManager
}

func NewPageController(chatService service.IChatService, sessions *serverutils.SessionManager) IPageController {
	return &pageController{
		chatService: chatService,
		sessions:    sessions,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Landing)
	r.Get("/about", c.About)
	r.Get("/contact", c.Contact)
	r.Get("/dashboard", c.Dashboard)
	r.Get("/chat", c.Chat)
}

func (c *pageController) Landing(ctx *fiber.Ctx) error {
	return ctx.Render("landing", fiber.Map{})
}

func (c *pageController) About(ctx *fiber.Ctx) error {
	return ctx.Render("about", fiber.Map{})
}

func (c *pageController) Contact(ctx *fiber.Ctx) error {
	return ctx.Render("contact", fiber.Map{})
}

func (c *pageController) Dashboard(ctx *fiber.Ctx) error {
	userId, ok := c.sessions.CurrentUserID(ctx)
	if !ok {
		return ctx.Redirect("/login")
	}

	sessions, err := c.chatService.GetUserSessions(ctx.Context(), userId)
	if err != nil {
		sessions = nil
	}

	return ctx.Render("dashboard", fiber.Map{
		"Username": c.sessions.Username(ctx),
		"FullName": c.sessions.FullName(ctx),
		"Sessions": sessions,
	})
}

// Chat renders the chat page, opening a chat session for this browser
// session if none is bound yet.
func (c *pageController) Chat(ctx *fiber.Ctx) error {
	userId, ok := c.sessions.CurrentUserID(ctx)
	if !ok {
		return ctx.Redirect("/login")
	}

	if c.sessions.ActiveChatSession(ctx) == "" {
		sessionId, err := c.chatService.CreateSession(ctx.Context(), userId)
		if err != nil {
			return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "could not open a chat session")
		}
		if err := c.sessions.SetActiveChatSession(ctx, sessionId); err != nil {
			return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "could not open a chat session")
		}
	}

	return ctx.Render("chat", fiber.Map{
		"Username": c.sessions.Username(ctx),
		"FullName": c.sessions.FullName(ctx),
	})
}
