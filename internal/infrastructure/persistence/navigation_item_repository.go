package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNavigationItemRepository implements taxonomy.NavigationRepository using GORM
type GormNavigationItemRepository struct {
	db *gorm.DB
}

// NewGormNavigationItemRepository creates a new GormNavigationItemRepository
func NewGormNavigationItemRepository(db *gorm.DB) *GormNavigationItemRepository {
	return &GormNavigationItemRepository{db: db}
}

// FindByID finds a navigation item by its ID
func (r *GormNavigationItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.NavigationItem, error) {
	var item taxonomy.NavigationItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds navigation items ordered by sort_order
func (r *GormNavigationItemRepository) FindAll(ctx context.Context, activeOnly bool) ([]taxonomy.NavigationItem, error) {
	var items []taxonomy.NavigationItem
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("is_active DESC, sort_order ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a navigation item
func (r *GormNavigationItemRepository) Save(ctx context.Context, item *taxonomy.NavigationItem) error {
	return translateError(r.db.WithContext(ctx).Save(item).Error)
}

// Reorder assigns sort_order = slice index to each item in one transaction
func (r *GormNavigationItemRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&taxonomy.NavigationItem{}).
				Where("id = ?", id).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.NewDomainError("INVALID_ORDER",
					fmt.Sprintf("Navigation item %s not found", id))
			}
		}
		return nil
	})
}
