package serverutils

import "github.com/gofiber/fiber/v2"

// API errors are rendered as a bare {"error": "..."} object so the
// browser-side fetch handlers can read a single field regardless of status.
func ErrorResponse(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func SuccessResponse(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}
