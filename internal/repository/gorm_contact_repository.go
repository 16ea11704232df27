package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"forge3d_backend/internal/model"
)

type GormContactRepository struct {
	db *gorm.DB
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

var _ ContactRepository = (*GormContactRepository)(nil)

func (r *GormContactRepository) Create(ctx context.Context, contact *model.ContactRequest) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// List returns one page of contact requests, newest first, plus the total
// row count for the active filter.
func (r *GormContactRepository) List(ctx context.Context, opts ContactListOptions) ([]model.ContactRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ContactRequest{})

	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []model.ContactRequest
	err := query.
		Order("created_at DESC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

func (r *GormContactRepository) Stats(ctx context.Context) (ContactStats, error) {
	var stats ContactStats
	db := r.db.WithContext(ctx).Model(&model.ContactRequest{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	if err := r.db.WithContext(ctx).Model(&model.ContactRequest{}).
		Where("status = ?", model.ContactStatusNew).
		Count(&stats.New).Error; err != nil {
		return stats, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := r.db.WithContext(ctx).Model(&model.ContactRequest{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.Today).Error; err != nil {
		return stats, err
	}

	if err := r.db.WithContext(ctx).Model(&model.ContactRequest{}).
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Count(&stats.LastWeek).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
