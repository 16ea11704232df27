package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"forge3d_backend/pkg/ratelimit"
)

// RateLimit rejects clients that exceed the limiter's per-address budget.
// Both form endpoints share one limiter, like the original site did.
func RateLimit(limiter *ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow(ClientIP(c)) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Trop de requêtes depuis cette IP, réessayez dans 15 minutes.",
			})
		}
		return c.Next()
	}
}

// ClientIP resolves the real client address behind the Nginx proxy:
// first X-Forwarded-For hop, then X-Real-IP, then the socket peer.
func ClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
