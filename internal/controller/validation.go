package controller

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"forge3d_backend/internal/model"
)

// FieldError is one field-level validation problem, returned to the client
// in the 400 response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateContactInput trims and checks a contact submission in place.
// The email address is normalized to lowercase.
func validateContactInput(input *ContactInput) []FieldError {
	var errs []FieldError

	input.Name = strings.TrimSpace(input.Name)
	input.Company = strings.TrimSpace(input.Company)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Le nom est requis"})
	}
	if input.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email invalide"})
	} else if addr, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Email invalide"})
	} else {
		input.Email = addr.Address
	}
	if input.Subject == "" {
		errs = append(errs, FieldError{Field: "subject", Message: "Le sujet est requis"})
	}
	if input.Message == "" {
		errs = append(errs, FieldError{Field: "message", Message: "Le message est requis"})
	}

	return errs
}

// validateTestimonialInput trims and checks a testimonial submission in place.
func validateTestimonialInput(input *TestimonialInput) []FieldError {
	var errs []FieldError

	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.TrimSpace(input.Role)
	input.Company = strings.TrimSpace(input.Company)
	input.Sector = strings.TrimSpace(input.Sector)
	input.Quote = strings.TrimSpace(input.Quote)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Le nom est requis"})
	}
	if input.Company == "" {
		errs = append(errs, FieldError{Field: "company", Message: "L'entreprise est requise"})
	}
	if input.Rating < 1 || input.Rating > 5 {
		errs = append(errs, FieldError{Field: "rating", Message: "La note doit être comprise entre 1 et 5"})
	}
	if n := utf8.RuneCountInString(input.Quote); n < model.TestimonialQuoteMinLen || n > model.TestimonialQuoteMaxLen {
		errs = append(errs, FieldError{Field: "quote", Message: "Le témoignage doit contenir entre 20 et 500 caractères"})
	}
	if input.Email != "" {
		if addr, err := mail.ParseAddress(input.Email); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "Email invalide"})
		} else {
			input.Email = addr.Address
		}
	}

	return errs
}
