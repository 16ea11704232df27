package controller

import (
	"log"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"forge3d_backend/internal/model"
	"forge3d_backend/internal/repository"
)

const featuredTestimonialLimit = 10

// avatarColors is the fixed palette the frontend maps to gradient classes.
var avatarColors = []string{
	"from-blue-600 to-blue-800",
	"from-green-600 to-green-800",
	"from-purple-600 to-purple-800",
	"from-orange-600 to-orange-800",
}

type TestimonialInput struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Sector  string `json:"sector"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Quote   string `json:"quote"`
}

type TestimonialController struct {
	testimonials repository.TestimonialRepository
}

func NewTestimonialController(testimonials repository.TestimonialRepository) *TestimonialController {
	return &TestimonialController{testimonials: testimonials}
}

// Create handles POST /api/testimonials. Submissions always land in
// "pending"; moderation happens elsewhere.
func (ctl *TestimonialController) Create(c *fiber.Ctx) error {
	input := new(TestimonialInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  []FieldError{{Field: "body", Message: "Format de requête invalide"}},
		})
	}

	if errs := validateTestimonialInput(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}

	testimonial := model.Testimonial{
		Name:        input.Name,
		Role:        input.Role,
		Company:     input.Company,
		Sector:      input.Sector,
		Email:       input.Email,
		Rating:      input.Rating,
		Quote:       input.Quote,
		Avatar:      avatarInitials(input.Name),
		AvatarColor: avatarColors[rand.Intn(len(avatarColors))],
		Status:      string(model.TestimonialStatusPending),
	}

	if err := ctl.testimonials.Create(c.UserContext(), &testimonial); err != nil {
		log.Printf("Error creating testimonial: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Erreur serveur",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"message":       "Merci pour votre témoignage ! Il sera publié après validation.",
		"testimonialId": testimonial.ID,
	})
}

// List handles GET /api/testimonials: only approved and featured rows are
// served, projected to their public fields.
func (ctl *TestimonialController) List(c *fiber.Ctx) error {
	testimonials, err := ctl.testimonials.ListFeatured(c.UserContext(), featuredTestimonialLimit)
	if err != nil {
		log.Printf("Error fetching testimonials: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Erreur serveur",
		})
	}

	public := make([]model.PublicTestimonial, 0, len(testimonials))
	for _, t := range testimonials {
		public = append(public, t.Public())
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"testimonials": public,
	})
}

// avatarInitials derives the avatar text from a name: the first letter of
// each of the first two whitespace-separated tokens, uppercased.
func avatarInitials(name string) string {
	var b strings.Builder
	for i, field := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(field)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
