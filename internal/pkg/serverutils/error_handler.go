package serverutils

import (
	"errors"

	"github.com/AlexisChartier/shopyverse-chatbot-service/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// ErrorHandlerMiddleware converts errors bubbled out of handlers into a
// consistent JSON envelope. Fiber errors keep their status code, anything
// else becomes a 500. The caller only ever sees a stable message plus the
// request id; the real error goes to the operational log under that same
// id, which is what makes a failed turn traceable.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		reqID, _ := ctx.Locals(requestid.ConfigDefault.ContextKey).(string)
		log.Error("http", "Request failed", map[string]interface{}{
			"request_id": reqID,
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     code,
			"error":      err.Error(),
		})

		return ctx.Status(code).JSON(ErrorResponse(code, message, reqID))
	}
}
