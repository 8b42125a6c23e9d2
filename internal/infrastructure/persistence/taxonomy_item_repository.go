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

// GormTaxonomyItemRepository implements taxonomy.ItemRepository using GORM
type GormTaxonomyItemRepository struct {
	db *gorm.DB
}

// NewGormTaxonomyItemRepository creates a new GormTaxonomyItemRepository
func NewGormTaxonomyItemRepository(db *gorm.DB) *GormTaxonomyItemRepository {
	return &GormTaxonomyItemRepository{db: db}
}

// FindByID finds a taxonomy item by its ID
func (r *GormTaxonomyItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.Item, error) {
	var item taxonomy.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCategory finds items of a category ordered by sort_order
func (r *GormTaxonomyItemRepository) FindByCategory(ctx context.Context, category taxonomy.Category, activeOnly bool) ([]taxonomy.Item, error) {
	var items []taxonomy.Item
	query := r.db.WithContext(ctx).Where("category = ?", category)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("is_active DESC, sort_order ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindAllActive returns the full active taxonomy snapshot
func (r *GormTaxonomyItemRepository) FindAllActive(ctx context.Context) ([]taxonomy.Item, error) {
	var items []taxonomy.Item
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category ASC, sort_order ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindActiveByLabel performs a case-insensitive label lookup among the
// active items of a category. Matching happens in Go so the lookup uses the
// same Unicode case fold as in-memory resolution; SQL LOWER folds
// differently (e.g. eszett). Categories hold tens of rows, not thousands.
func (r *GormTaxonomyItemRepository) FindActiveByLabel(ctx context.Context, category taxonomy.Category, label string) (*taxonomy.Item, error) {
	var items []taxonomy.Item
	if err := r.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", category, true).
		Order("sort_order ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	for idx := range items {
		if items[idx].MatchesLabel(label) {
			return &items[idx], nil
		}
	}
	return nil, shared.ErrNotFound
}

// MaxSortOrder returns the highest sort_order among a category's active
// items, or -1 when the category has none
func (r *GormTaxonomyItemRepository) MaxSortOrder(ctx context.Context, category taxonomy.Category) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&taxonomy.Item{}).
		Where("category = ? AND is_active = ?", category, true).
		Select("MAX(sort_order)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// Save creates or updates a taxonomy item
func (r *GormTaxonomyItemRepository) Save(ctx context.Context, item *taxonomy.Item) error {
	return translateError(r.db.WithContext(ctx).Save(item).Error)
}

// Reorder assigns sort_order = slice index to each item in one transaction.
// IDs that do not belong to the category fail the whole batch.
func (r *GormTaxonomyItemRepository) Reorder(ctx context.Context, category taxonomy.Category, orderedIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range orderedIDs {
			result := tx.Model(&taxonomy.Item{}).
				Where("id = ? AND category = ?", id, category).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.NewDomainError("INVALID_ORDER",
					fmt.Sprintf("Item %s does not belong to category %s", id, category))
			}
		}
		return nil
	})
}
