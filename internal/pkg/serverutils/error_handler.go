package serverutils

import (
	"errors"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors to HTTP responses. Anything
// outside the apperr taxonomy is a 500 with a generic message; the cause
// goes to the log, not the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			if appErr.Status >= 500 {
				log.Error("http", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"code":  appErr.Code,
					"error": err.Error(),
				})
			}
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Status, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
