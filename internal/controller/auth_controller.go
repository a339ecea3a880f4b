package controller

import (
	"errors"

	"ai-counselor-be/internal/dto"
	"ai-counselor-be/internal/pkg/serverutils"
	"ai-counselor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignupPage(ctx *fiber.Ctx) error
	Signup(ctx *fiber.Ctx) error
	LoginPage(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	chatService service.IChatService
	sessions    *serverutils.SessionManager
}

func NewAuthController(authService service.IAuthService, chatService service.IChatService, sessions *serverutils.SessionManager) IAuthController {
	return &authController{
		authService: authService,
		chatService: chatService,
		sessions:    sessions,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Get("/signup", c.SignupPage)
	r.Post("/signup", c.Signup)
	r.Get("/login", c.LoginPage)
	r.Post("/login", c.Login)
	r.Get("/logout", c.Logout)
}

func (c *authController) SignupPage(ctx *fiber.Ctx) error {
	return ctx.Render("signup", fiber.Map{})
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return ctx.Render("signup", fiber.Map{"Error": err.Error()})
	}

	user, chatSessionId, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			return ctx.Render("signup", fiber.Map{"Error": "Username or email already exists"})
		}
		return ctx.Render("signup", fiber.Map{"Error": "Something went wrong, please try again"})
	}

	if err := c.sessions.Login(ctx, user.Id, user.Username, user.FullName); err != nil {
		return ctx.Render("signup", fiber.Map{"Error": "Something went wrong, please try again"})
	}
	if chatSessionId != "" {
		_ = c.sessions.SetActiveChatSession(ctx, chatSessionId)
	}
	return ctx.Redirect("/dashboard")
}

func (c *authController) LoginPage(ctx *fiber.Ctx) error {
	return ctx.Render("login", fiber.Map{})
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return ctx.Render("login", fiber.Map{"Error": err.Error()})
	}

	user, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Render("login", fiber.Map{"Error": "Invalid username or password"})
		}
		return ctx.Render("login", fiber.Map{"Error": "Something went wrong, please try again"})
	}

	fullName := user.FullName
	if fullName == "" {
		fullName = user.Username
	}
	if err := c.sessions.Login(ctx, user.Id, user.Username, fullName); err != nil {
		return ctx.Render("login", fiber.Map{"Error": "Something went wrong, please try again"})
	}

	// Bind the most recent chat session so the chat page resumes where the
	// user left off.
	sessionId, err := c.chatService.LatestOrCreateSession(ctx.Context(), user.Id)
	if err == nil {
		_ = c.sessions.SetActiveChatSession(ctx, sessionId)
	}

	return ctx.Redirect("/dashboard")
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	_ = c.sessions.Logout(ctx)
	return ctx.Redirect("/")
}
