package repository

import (
	"context"

	"gorm.io/gorm"

	"forge3d_backend/internal/model"
)

type GormEmailLogRepository struct {
	db *gorm.DB
}

func NewGormEmailLogRepository(db *gorm.DB) *GormEmailLogRepository {
	return &GormEmailLogRepository{db: db}
}

var _ EmailLogRepository = (*GormEmailLogRepository)(nil)

func (r *GormEmailLogRepository) Create(ctx context.Context, entry *model.EmailLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormEmailLogRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).Model(&model.EmailLog{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}
