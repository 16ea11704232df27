package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health handles GET /health for the container healthcheck.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
