package configsvc

import (
	"context"

	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
)

// NavigationService manages the dashboard's configurable navigation entries
type NavigationService struct {
	navRepo taxonomy.NavigationRepository
}

// NewNavigationService creates a new NavigationService
func NewNavigationService(navRepo taxonomy.NavigationRepository) *NavigationService {
	return &NavigationService{navRepo: navRepo}
}

// List returns navigation entries ordered by sort_order
func (s *NavigationService) List(ctx context.Context, includeInactive bool) ([]NavigationResponse, error) {
	items, err := s.navRepo.FindAll(ctx, !includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]NavigationResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, *ToNavigationResponse(&items[idx]))
	}
	return responses, nil
}

// Create adds a navigation entry at the end of the ordering
func (s *NavigationService) Create(ctx context.Context, req CreateNavigationRequest) (*NavigationResponse, error) {
	item, err := taxonomy.NewNavigationItem(req.Label, req.Path, req.Icon)
	if err != nil {
		return nil, err
	}

	active, err := s.navRepo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}
	item.SetSortOrder(len(active))

	if err := s.navRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToNavigationResponse(item), nil
}

// Update patches a navigation entry
func (s *NavigationService) Update(ctx context.Context, id uuid.UUID, req UpdateNavigationRequest) (*NavigationResponse, error) {
	item, err := s.navRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	label, path, icon := "", "", ""
	if req.Label != nil {
		label = *req.Label
	}
	if req.Path != nil {
		path = *req.Path
	}
	if req.Icon != nil {
		icon = *req.Icon
	}
	if err := item.Update(label, path, icon); err != nil {
		return nil, err
	}

	if err := s.navRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return ToNavigationResponse(item), nil
}

// Reorder replaces the ordering of the active navigation entries
func (s *NavigationService) Reorder(ctx context.Context, req NavigationReorderRequest) error {
	active, err := s.navRepo.FindAll(ctx, true)
	if err != nil {
		return err
	}

	currentIDs := make([]uuid.UUID, 0, len(active))
	for idx := range active {
		currentIDs = append(currentIDs, active[idx].ID)
	}
	if err := validatePermutation(req.OrderedIDs, currentIDs); err != nil {
		return err
	}

	return s.navRepo.Reorder(ctx, req.OrderedIDs)
}

// Deactivate soft-deletes a navigation entry and compacts the ordering
func (s *NavigationService) Deactivate(ctx context.Context, id uuid.UUID) error {
	item, err := s.navRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !item.IsActive {
		return nil
	}

	item.Deactivate()
	if err := s.navRepo.Save(ctx, item); err != nil {
		return err
	}

	remaining, err := s.navRepo.FindAll(ctx, true)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(remaining))
	for idx := range remaining {
		ids = append(ids, remaining[idx].ID)
	}
	return s.navRepo.Reorder(ctx, ids)
}
