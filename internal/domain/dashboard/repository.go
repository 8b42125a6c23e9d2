package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InitiativeFilter narrows an initiative listing. Zero values mean
// "no constraint". Period matches initiatives whose own [start,end]
// interval overlaps the filter interval (inclusive, open ends unbounded).
type InitiativeFilter struct {
	OwnerID  *uuid.UUID
	Team     string
	Status   string
	Priority string
	Period   DateRange
	Page     int
	PageSize int
}

// AchievementFilter narrows an achievement listing
type AchievementFilter struct {
	OwnerID   *uuid.UUID
	CreatedBy *uuid.UUID
	Category  string
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

// InitiativeRepository defines persistence operations for initiatives
type InitiativeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Initiative, error)
	FindAll(ctx context.Context, filter InitiativeFilter) ([]Initiative, int64, error)
	Save(ctx context.Context, initiative *Initiative) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AchievementRepository defines persistence operations for achievements
type AchievementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Achievement, error)
	FindAll(ctx context.Context, filter AchievementFilter) ([]Achievement, int64, error)
	Save(ctx context.Context, achievement *Achievement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Pagination defaults shared by both filters
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePagination clamps page/page_size to sane bounds
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return page, pageSize
}
