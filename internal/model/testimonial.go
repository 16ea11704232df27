package model

import (
	"gorm.io/gorm"
)

type TestimonialStatus string

const (
	TestimonialStatusPending  TestimonialStatus = "pending"
	TestimonialStatusApproved TestimonialStatus = "approved"
)

const (
	TestimonialQuoteMinLen = 20
	TestimonialQuoteMaxLen = 500
)

// Testimonial is a client quote submitted from the site. Submissions land in
// "pending"; approval and the featured flag are set by the moderation tooling.
type Testimonial struct {
	gorm.Model
	Name        string `json:"name"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Sector      string `json:"sector"`
	Email       string `json:"email"`
	Rating      int    `json:"rating"` // 1..5
	Quote       string `json:"quote" gorm:"type:text"`
	Avatar      string `json:"avatar"` // initials, at most 2 characters
	AvatarColor string `json:"avatar_color"`
	Status      string `json:"status" gorm:"default:'pending';index"`
	IsFeatured  bool   `json:"is_featured" gorm:"default:false;index"`
}

// PublicTestimonial is the projection served to the website. Email and
// moderation fields stay private.
type PublicTestimonial struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Sector      string `json:"sector"`
	Rating      int    `json:"rating"`
	Quote       string `json:"quote"`
	Avatar      string `json:"avatar"`
	AvatarColor string `json:"avatar_color"`
}

func (t Testimonial) Public() PublicTestimonial {
	return PublicTestimonial{
		ID:          t.ID,
		Name:        t.Name,
		Role:        t.Role,
		Company:     t.Company,
		Sector:      t.Sector,
		Rating:      t.Rating,
		Quote:       t.Quote,
		Avatar:      t.Avatar,
		AvatarColor: t.AvatarColor,
	}
}
