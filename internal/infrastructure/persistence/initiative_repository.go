package persistence

import (
	"context"
	"errors"

	"github.com/execdash/backend/internal/domain/dashboard"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInitiativeRepository implements dashboard.InitiativeRepository using GORM
type GormInitiativeRepository struct {
	db *gorm.DB
}

// NewGormInitiativeRepository creates a new GormInitiativeRepository
func NewGormInitiativeRepository(db *gorm.DB) *GormInitiativeRepository {
	return &GormInitiativeRepository{db: db}
}

// FindByID finds an initiative by its ID
func (r *GormInitiativeRepository) FindByID(ctx context.Context, id uuid.UUID) (*dashboard.Initiative, error) {
	var initiative dashboard.Initiative
	if err := r.db.WithContext(ctx).First(&initiative, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &initiative, nil
}

// FindAll finds initiatives matching the filter, newest first
func (r *GormInitiativeRepository) FindAll(ctx context.Context, filter dashboard.InitiativeFilter) ([]dashboard.Initiative, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&dashboard.Initiative{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var initiatives []dashboard.Initiative
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Order("created_at DESC").Find(&initiatives).Error; err != nil {
		return nil, 0, err
	}
	return initiatives, total, nil
}

// Save creates or updates an initiative
func (r *GormInitiativeRepository) Save(ctx context.Context, initiative *dashboard.Initiative) error {
	return translateError(r.db.WithContext(ctx).Save(initiative).Error)
}

// Delete removes an initiative
func (r *GormInitiativeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dashboard.Initiative{}, "id = ?", id).Error
}

// applyFilter narrows the query. The period filter keeps initiatives whose
// own [start,end] interval overlaps the requested one; initiatives with an
// open end are treated as unbounded on that side.
func (r *GormInitiativeRepository) applyFilter(query *gorm.DB, filter dashboard.InitiativeFilter) *gorm.DB {
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Period.To != nil {
		query = query.Where("(start_date IS NULL OR start_date <= ?)", *filter.Period.To)
	}
	if filter.Period.From != nil {
		query = query.Where("(end_date IS NULL OR end_date >= ?)", *filter.Period.From)
	}
	return query
}
