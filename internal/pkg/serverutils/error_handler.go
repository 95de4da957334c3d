package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skillswap-be/internal/apperr"
)

// ErrorHandler is installed as the Fiber app error handler. Service errors
// carry their own kind and status; everything else degrades to a 500 without
// leaking internals.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return ctx.Status(appErr.Status).JSON(fiber.Map{
			"error":   string(appErr.Kind),
			"message": appErr.Message,
			"status":  appErr.Status,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}
