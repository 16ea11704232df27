// Package repository defines the persistence interfaces for the backend and
// their GORM/Postgres implementations. Handlers depend on the interfaces so
// tests can substitute in-memory fakes.
package repository

import (
	"context"

	"forge3d_backend/internal/model"
)

// ContactListOptions carries filter and pagination parameters for listing
// contact requests.
type ContactListOptions struct {
	Status string // empty returns all statuses
	Limit  int
	Offset int
}

// StatusCount is one row of a GROUP BY status aggregate.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ContactStats aggregates contact request counts for the admin dashboard.
type ContactStats struct {
	Total    int64 `json:"total"`
	New      int64 `json:"new"`
	Today    int64 `json:"today"`
	LastWeek int64 `json:"last_week"`
}

type ContactRepository interface {
	Create(ctx context.Context, contact *model.ContactRequest) error
	List(ctx context.Context, opts ContactListOptions) ([]model.ContactRequest, int64, error)
	Stats(ctx context.Context) (ContactStats, error)
}

type EmailLogRepository interface {
	Create(ctx context.Context, entry *model.EmailLog) error
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) error
	ListFeatured(ctx context.Context, limit int) ([]model.Testimonial, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
