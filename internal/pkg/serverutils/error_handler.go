package serverutils

import (
	"errors"

	"lark-inventory-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler builds the Fiber error handler converting AppError and
// framework errors into {"detail": message} bodies.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(fiber.Map{"detail": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"error": err.Error(),
			"path":  ctx.Path(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal Server Error"})
	}
}
