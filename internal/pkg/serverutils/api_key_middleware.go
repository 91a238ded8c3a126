package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// APIKeyMiddleware guards ingest and admin routes with a shared key passed in
// the x-api-key header. An empty configured key disables the routes entirely.
func APIKeyMiddleware(apiKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if apiKey == "" {
			return fiber.NewError(fiber.StatusForbidden, "Admin API disabled")
		}

		provided := ctx.Get("x-api-key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid API key")
		}

		return ctx.Next()
	}
}
