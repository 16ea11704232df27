package repository

import (
	"context"

	"gorm.io/gorm"

	"forge3d_backend/internal/model"
)

type GormTestimonialRepository struct {
	db *gorm.DB
}

func NewGormTestimonialRepository(db *gorm.DB) *GormTestimonialRepository {
	return &GormTestimonialRepository{db: db}
}

var _ TestimonialRepository = (*GormTestimonialRepository)(nil)

func (r *GormTestimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

// ListFeatured returns the testimonials shown on the public site: approved,
// featured, newest first.
func (r *GormTestimonialRepository) ListFeatured(ctx context.Context, limit int) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_featured = ?", model.TestimonialStatusApproved, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&testimonials).Error
	return testimonials, err
}

func (r *GormTestimonialRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).Model(&model.Testimonial{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}
