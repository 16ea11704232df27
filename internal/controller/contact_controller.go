package controller

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"forge3d_backend/internal/middleware"
	"forge3d_backend/internal/model"
	"forge3d_backend/internal/repository"
	"forge3d_backend/pkg/email"
)

const genericErrorMessage = "Erreur lors de l'envoi. Veuillez réessayer ou nous contacter directement."

type ContactInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactController struct {
	contacts  repository.ContactRepository
	emailLogs repository.EmailLogRepository
	emails    *email.Service
}

func NewContactController(
	contacts repository.ContactRepository,
	emailLogs repository.EmailLogRepository,
	emails *email.Service,
) *ContactController {
	return &ContactController{
		contacts:  contacts,
		emailLogs: emailLogs,
		emails:    emails,
	}
}

// Create handles POST /api/contact: persist the submission, relay it to the
// operator by email, and record the delivery outcome. A failed send never
// fails the request; only a failed insert does.
func (ctl *ContactController) Create(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  []FieldError{{Field: "body", Message: "Format de requête invalide"}},
		})
	}

	if errs := validateContactInput(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}

	ctx := c.UserContext()
	contact := model.ContactRequest{
		Name:      input.Name,
		Company:   input.Company,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		IPAddress: middleware.ClientIP(c),
		UserAgent: c.Get("User-Agent"),
		Status:    string(model.ContactStatusNew),
	}

	if err := ctl.contacts.Create(ctx, &contact); err != nil {
		log.Printf("Error creating contact request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": genericErrorMessage,
		})
	}

	// The notification embeds the generated id, so it can only be built
	// after the insert.
	msg, buildErr := ctl.emails.BuildContactNotification(email.ContactNotificationData{
		ContactID: contact.ID,
		Name:      contact.Name,
		Company:   contact.Company,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Subject:   contact.Subject,
		Message:   contact.Message,
		IPAddress: contact.IPAddress,
		Timestamp: email.FormatTimestamp(time.Now()),
	})

	sendErr := buildErr
	if sendErr == nil {
		sendErr = ctl.emails.Send(msg)
	}

	entry := model.EmailLog{
		ContactRequestID: &contact.ID,
		ToEmail:          ctl.emails.OperatorAddress(),
		FromEmail:        contact.Email,
	}
	if msg != nil {
		entry.Subject = msg.Subject
		entry.Body = msg.Body
		if headers, err := json.Marshal(msg.Headers()); err == nil {
			entry.Headers = datatypes.JSON(headers)
		}
	}
	if sendErr != nil {
		log.Printf("Could not send contact notification for request #%d: %v", contact.ID, sendErr)
		entry.Status = model.EmailStatusFailed
		entry.ErrorMessage = sendErr.Error()
	} else {
		now := time.Now()
		entry.Status = model.EmailStatusSent
		entry.SentAt = &now
	}

	if err := ctl.emailLogs.Create(ctx, &entry); err != nil {
		log.Printf("Could not record email log for request #%d: %v", contact.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"message":   "Votre demande a été envoyée avec succès. Nous vous répondrons sous 24h.",
		"contactId": contact.ID,
	})
}

// List handles GET /api/contacts for the admin tooling: optional status
// filter, newest first, paginated.
func (ctl *ContactController) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	contacts, total, err := ctl.contacts.List(c.UserContext(), repository.ContactListOptions{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Printf("Error fetching contacts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Erreur serveur",
		})
	}

	if contacts == nil {
		contacts = []model.ContactRequest{}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"total":    total,
		"contacts": contacts,
	})
}
