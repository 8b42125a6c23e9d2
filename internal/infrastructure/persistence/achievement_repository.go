package persistence

import (
	"context"
	"errors"

	"github.com/execdash/backend/internal/domain/dashboard"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAchievementRepository implements dashboard.AchievementRepository using GORM
type GormAchievementRepository struct {
	db *gorm.DB
}

// NewGormAchievementRepository creates a new GormAchievementRepository
func NewGormAchievementRepository(db *gorm.DB) *GormAchievementRepository {
	return &GormAchievementRepository{db: db}
}

// FindByID finds an achievement by its ID
func (r *GormAchievementRepository) FindByID(ctx context.Context, id uuid.UUID) (*dashboard.Achievement, error) {
	var achievement dashboard.Achievement
	if err := r.db.WithContext(ctx).First(&achievement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &achievement, nil
}

// FindAll finds achievements matching the filter, most recent first
func (r *GormAchievementRepository) FindAll(ctx context.Context, filter dashboard.AchievementFilter) ([]dashboard.Achievement, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&dashboard.Achievement{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var achievements []dashboard.Achievement
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Order("achieved_on DESC NULLS LAST, created_at DESC").Find(&achievements).Error; err != nil {
		return nil, 0, err
	}
	return achievements, total, nil
}

// Save creates or updates an achievement
func (r *GormAchievementRepository) Save(ctx context.Context, achievement *dashboard.Achievement) error {
	return translateError(r.db.WithContext(ctx).Save(achievement).Error)
}

// Delete removes an achievement
func (r *GormAchievementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dashboard.Achievement{}, "id = ?", id).Error
}

func (r *GormAchievementRepository) applyFilter(query *gorm.DB, filter dashboard.AchievementFilter) *gorm.DB {
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", *filter.CreatedBy)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.From != nil {
		query = query.Where("achieved_on >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("achieved_on <= ?", *filter.To)
	}
	return query
}
