package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"forge3d_backend/internal/repository"
)

type StatsController struct {
	contacts     repository.ContactRepository
	emailLogs    repository.EmailLogRepository
	testimonials repository.TestimonialRepository
}

func NewStatsController(
	contacts repository.ContactRepository,
	emailLogs repository.EmailLogRepository,
	testimonials repository.TestimonialRepository,
) *StatsController {
	return &StatsController{
		contacts:     contacts,
		emailLogs:    emailLogs,
		testimonials: testimonials,
	}
}

// Get handles GET /api/stats: contact counts plus email-log and testimonial
// counts grouped by status. Read-only.
func (ctl *StatsController) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	contactStats, err := ctl.contacts.Stats(ctx)
	if err != nil {
		log.Printf("Error fetching contact stats: %v", err)
		return serverError(c)
	}

	emailCounts, err := ctl.emailLogs.CountByStatus(ctx)
	if err != nil {
		log.Printf("Error fetching email stats: %v", err)
		return serverError(c)
	}

	testimonialCounts, err := ctl.testimonials.CountByStatus(ctx)
	if err != nil {
		log.Printf("Error fetching testimonial stats: %v", err)
		return serverError(c)
	}

	if emailCounts == nil {
		emailCounts = []repository.StatusCount{}
	}
	if testimonialCounts == nil {
		testimonialCounts = []repository.StatusCount{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"contacts":     contactStats,
			"emails":       emailCounts,
			"testimonials": testimonialCounts,
		},
	})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Erreur serveur",
	})
}
