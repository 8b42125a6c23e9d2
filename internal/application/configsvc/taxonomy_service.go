package configsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
)

// TaxonomyService handles the configurable value sets behind the dashboard's
// classification fields
type TaxonomyService struct {
	itemRepo taxonomy.ItemRepository
}

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(itemRepo taxonomy.ItemRepository) *TaxonomyService {
	return &TaxonomyService{itemRepo: itemRepo}
}

// List returns the items of one category ordered by sort_order. With
// includeInactive, soft-deleted items are appended after the active ones.
func (s *TaxonomyService) List(ctx context.Context, category string, includeInactive bool) ([]ItemResponse, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByCategory(ctx, cat, !includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, *ToItemResponse(&items[idx]))
	}
	return responses, nil
}

// ListAll returns every active item grouped by category, for the dashboard's
// initial config load
func (s *TaxonomyService) ListAll(ctx context.Context) (map[string][]ItemResponse, error) {
	items, err := s.itemRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]ItemResponse, len(taxonomy.AllCategories))
	for _, category := range taxonomy.AllCategories {
		grouped[string(category)] = []ItemResponse{}
	}
	for idx := range items {
		key := string(items[idx].Category)
		grouped[key] = append(grouped[key], *ToItemResponse(&items[idx]))
	}
	return grouped, nil
}

// Create adds a new item at the end of its category's ordering
func (s *TaxonomyService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	cat, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	if err := s.ensureLabelFree(ctx, cat, req.Label); err != nil {
		return nil, err
	}

	item, err := taxonomy.NewItem(cat, req.Label, req.Color)
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.itemRepo.MaxSortOrder(ctx, cat)
	if err != nil {
		return nil, err
	}
	item.SetSortOrder(maxOrder + 1)

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// Update patches an item's label and/or color
func (s *TaxonomyService) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Label != nil && !item.MatchesLabel(*req.Label) {
		if err := s.ensureLabelFree(ctx, item.Category, *req.Label); err != nil {
			return nil, err
		}
	}
	if req.Label != nil {
		if err := item.Rename(*req.Label); err != nil {
			return nil, err
		}
	}
	if req.Color != nil {
		if err := item.SetColor(*req.Color); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// Reorder replaces the ordering of a category's active items. The submitted
// IDs must be a permutation of the category's current active set; the last
// accepted submission wins.
func (s *TaxonomyService) Reorder(ctx context.Context, req ReorderRequest) error {
	cat, err := parseCategory(req.Category)
	if err != nil {
		return err
	}

	active, err := s.itemRepo.FindByCategory(ctx, cat, true)
	if err != nil {
		return err
	}
	if err := validatePermutation(req.OrderedIDs, activeIDs(active)); err != nil {
		return err
	}

	return s.itemRepo.Reorder(ctx, cat, req.OrderedIDs)
}

// Deactivate soft-deletes an item and closes the sort_order gap it leaves
func (s *TaxonomyService) Deactivate(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !item.IsActive {
		return nil
	}

	item.Deactivate()
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return err
	}

	remaining, err := s.itemRepo.FindByCategory(ctx, item.Category, true)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	return s.itemRepo.Reorder(ctx, item.Category, activeIDs(remaining))
}

// Activate restores a soft-deleted item at the end of the ordering. Its label
// must not collide with an active item added in the meantime.
func (s *TaxonomyService) Activate(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.IsActive {
		return ToItemResponse(item), nil
	}

	if err := s.ensureLabelFree(ctx, item.Category, item.Label); err != nil {
		return nil, err
	}

	maxOrder, err := s.itemRepo.MaxSortOrder(ctx, item.Category)
	if err != nil {
		return nil, err
	}
	item.Activate()
	item.SetSortOrder(maxOrder + 1)

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// ensureLabelFree rejects labels already used by an active item of the
// category, comparing case-insensitively
func (s *TaxonomyService) ensureLabelFree(ctx context.Context, category taxonomy.Category, label string) error {
	existing, err := s.itemRepo.FindActiveByLabel(ctx, category, label)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing != nil {
		return shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("An active item labeled %q already exists in %s", existing.Label, category))
	}
	return nil
}

func parseCategory(raw string) (taxonomy.Category, error) {
	cat := taxonomy.Category(raw)
	if !cat.IsValid() {
		return "", shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown taxonomy category %q", raw))
	}
	return cat, nil
}

func activeIDs(items []taxonomy.Item) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for idx := range items {
		ids = append(ids, items[idx].ID)
	}
	return ids
}

// validatePermutation checks that submitted is exactly the current set, in
// any order, with no duplicates
func validatePermutation(submitted, current []uuid.UUID) error {
	if len(submitted) != len(current) {
		return shared.NewDomainError("INVALID_ORDER",
			fmt.Sprintf("Expected %d item IDs, got %d", len(current), len(submitted)))
	}
	seen := make(map[uuid.UUID]bool, len(submitted))
	for _, id := range submitted {
		if seen[id] {
			return shared.NewDomainError("INVALID_ORDER", "Duplicate item ID: "+id.String())
		}
		seen[id] = true
	}
	for _, id := range current {
		if !seen[id] {
			return shared.NewDomainError("INVALID_ORDER", "Missing item ID: "+id.String())
		}
	}
	return nil
}
