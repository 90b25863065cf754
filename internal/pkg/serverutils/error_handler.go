package serverutils

import (
	"errors"

	"portfolio-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the response envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err)
	}
}

func WriteError(ctx *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		res := BaseResponse[map[string]string]{
			Success: false,
			Code:    fiber.StatusBadRequest,
			Message: "validation failed",
			Data:    describeValidation(validationErrs),
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(res)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	code := StatusFor(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		message = "internal server error"
	}
	return ctx.Status(code).JSON(ErrorResponse(code, message))
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
