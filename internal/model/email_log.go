package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog records one notification delivery attempt. Exactly one row is
// written per persisted contact request, whatever the SMTP outcome.
type EmailLog struct {
	gorm.Model
	ContactRequestID *uint          `json:"contact_request_id" gorm:"index"`
	ToEmail          string         `json:"to_email"`
	FromEmail        string         `json:"from_email"` // submitter address, not the SMTP envelope sender
	Subject          string         `json:"subject"`
	Body             string         `json:"body" gorm:"type:text"`
	Status           string         `json:"status" gorm:"index"` // sent | failed
	ErrorMessage     string         `json:"error_message"`
	Headers          datatypes.JSON `json:"headers"`
	SentAt           *time.Time     `json:"sent_at"`
}
