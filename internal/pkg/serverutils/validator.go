package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the request body into req and runs struct
// validation. It returns a human-readable message for the first failing
// field so controllers can pass it straight to ErrorResponse.
func ValidateRequest(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return fmt.Errorf("invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(validationErrors) == 0 {
			return fmt.Errorf("invalid request")
		}
		fe := validationErrors[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", field)
		case "email":
			return fmt.Errorf("%s must be a valid email address", field)
		case "min":
			return fmt.Errorf("%s must be at least %s characters", field, fe.Param())
		case "max":
			return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
		default:
			return fmt.Errorf("%s is invalid", field)
		}
	}

	return nil
}
