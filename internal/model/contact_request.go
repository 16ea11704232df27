package model

import (
	"gorm.io/gorm"
)

type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusRead      ContactStatus = "read"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusClosed    ContactStatus = "closed"
)

// ContactRequest is a sales inquiry submitted through the website contact
// form. Rows are only ever inserted here; status transitions belong to the
// admin tooling.
type ContactRequest struct {
	gorm.Model
	Name      string `json:"name"`
	Company   string `json:"company"`
	Email     string `json:"email" gorm:"index"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message" gorm:"type:text"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	Status    string `json:"status" gorm:"default:'new';index"`

	EmailLogs []EmailLog `json:"-" gorm:"foreignKey:ContactRequestID"`
}
