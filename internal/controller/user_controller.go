package controller

import (
	"ai-counselor-be/internal/dto"
	"ai-counselor-be/internal/pkg/serverutils"
	"ai-counselor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	sessions    *serverutils.SessionManager
}

func NewUserController(userService service.IUserService, sessions *serverutils.SessionManager) IUserController {
	return &userController{
		userService: userService,
		sessions:    sessions,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api")
	h.Get("/user-profile", c.Profile)
	h.Post("/update-profile", c.UpdateProfile)
}

// Profile answers from the session cookie only. Background and interests are
// returned as empty placeholders even though update-profile persists them;
// the chat UI reads those fields from its own form state.
func (c *userController) Profile(ctx *fiber.Ctx) error {
	_, ok := c.sessions.CurrentUserID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{})
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, dto.UserProfileResponse{
		Username:              c.sessions.Username(ctx),
		FullName:              c.sessions.FullName(ctx),
		EducationalBackground: "",
		Interests:             []string{},
	})
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId, ok := c.sessions.CurrentUserID(ctx)
	if !ok {
		return serverutils.ErrorResponse(ctx, fiber.StatusUnauthorized, "Not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	if err := c.userService.UpdateProfile(ctx.Context(), userId, &req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, "could not update profile")
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, dto.UpdateProfileResponse{Success: true})
}
