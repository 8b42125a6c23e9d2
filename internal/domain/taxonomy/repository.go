package taxonomy

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines persistence operations for taxonomy items
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// FindByCategory returns items of a category ordered by sort_order
	// ascending. With activeOnly, soft-deleted items are excluded.
	FindByCategory(ctx context.Context, category Category, activeOnly bool) ([]Item, error)
	// FindAllActive returns the full active taxonomy snapshot across all
	// categories, ordered by category then sort_order.
	FindAllActive(ctx context.Context) ([]Item, error)
	// FindActiveByLabel performs a case-insensitive label lookup among the
	// active items of a category.
	FindActiveByLabel(ctx context.Context, category Category, label string) (*Item, error)
	// MaxSortOrder returns the highest sort_order among active items of a
	// category, or -1 when the category has none.
	MaxSortOrder(ctx context.Context, category Category) (int, error)
	Save(ctx context.Context, item *Item) error
	// Reorder assigns sort_order = slice index to each item, in one
	// transaction. IDs not belonging to the category are an error.
	Reorder(ctx context.Context, category Category, orderedIDs []uuid.UUID) error
}

// NavigationRepository defines persistence operations for navigation items
type NavigationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*NavigationItem, error)
	FindAll(ctx context.Context, activeOnly bool) ([]NavigationItem, error)
	Save(ctx context.Context, item *NavigationItem) error
	Reorder(ctx context.Context, orderedIDs []uuid.UUID) error
}

// AliasRepository defines persistence operations for field aliases
type AliasRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FieldAlias, error)
	FindAllActive(ctx context.Context) ([]FieldAlias, error)
	FindByField(ctx context.Context, fieldName string) ([]FieldAlias, error)
	Save(ctx context.Context, alias *FieldAlias) error
}
