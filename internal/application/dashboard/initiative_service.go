package dashboard

import (
	"context"

	domain "github.com/execdash/backend/internal/domain/dashboard"
	"github.com/google/uuid"
)

// InitiativeService handles strategic initiative operations
type InitiativeService struct {
	initiativeRepo domain.InitiativeRepository
}

// NewInitiativeService creates a new InitiativeService
func NewInitiativeService(initiativeRepo domain.InitiativeRepository) *InitiativeService {
	return &InitiativeService{initiativeRepo: initiativeRepo}
}

// Create creates a new initiative
func (s *InitiativeService) Create(ctx context.Context, req CreateInitiativeRequest) (*InitiativeResponse, error) {
	initiative, err := domain.NewInitiative(req.Title)
	if err != nil {
		return nil, err
	}

	initiative.Description = req.Description
	initiative.OwnerID = req.OwnerID
	initiative.Team = req.Team
	initiative.Status = req.Status
	initiative.Priority = req.Priority
	initiative.BusinessImpact = req.BusinessImpact
	initiative.ProductArea = req.ProductArea
	initiative.ProcessStage = req.ProcessStage
	initiative.GtmType = req.GtmType
	initiative.CreatedBy = req.CreatedBy

	if err := initiative.SetSchedule(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if req.Budget != nil {
		if err := initiative.SetBudget(*req.Budget); err != nil {
			return nil, err
		}
	}

	if err := s.initiativeRepo.Save(ctx, initiative); err != nil {
		return nil, err
	}
	return ToInitiativeResponse(initiative), nil
}

// GetByID retrieves an initiative by ID
func (s *InitiativeService) GetByID(ctx context.Context, id uuid.UUID) (*InitiativeResponse, error) {
	initiative, err := s.initiativeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInitiativeResponse(initiative), nil
}

// List retrieves initiatives matching the filter. The date filter matches
// initiatives whose own period overlaps the requested interval.
func (s *InitiativeService) List(ctx context.Context, filter InitiativeListFilter) ([]InitiativeResponse, int64, error) {
	page, pageSize := domain.NormalizePagination(filter.Page, filter.PageSize)
	domainFilter := domain.InitiativeFilter{
		OwnerID:  filter.OwnerID,
		Team:     filter.Team,
		Status:   filter.Status,
		Priority: filter.Priority,
		Period:   domain.DateRange{From: filter.From, To: filter.To},
		Page:     page,
		PageSize: pageSize,
	}

	initiatives, total, err := s.initiativeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]InitiativeResponse, 0, len(initiatives))
	for idx := range initiatives {
		responses = append(responses, *ToInitiativeResponse(&initiatives[idx]))
	}
	return responses, total, nil
}

// Update patches an initiative
func (s *InitiativeService) Update(ctx context.Context, id uuid.UUID, req UpdateInitiativeRequest) (*InitiativeResponse, error) {
	initiative, err := s.initiativeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := initiative.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		initiative.Description = *req.Description
	}
	if req.OwnerID != nil {
		initiative.OwnerID = req.OwnerID
	}
	applyLabel(&initiative.Team, req.Team)
	applyLabel(&initiative.Status, req.Status)
	applyLabel(&initiative.Priority, req.Priority)
	applyLabel(&initiative.BusinessImpact, req.BusinessImpact)
	applyLabel(&initiative.ProductArea, req.ProductArea)
	applyLabel(&initiative.ProcessStage, req.ProcessStage)
	applyLabel(&initiative.GtmType, req.GtmType)

	switch {
	case req.ClearSchedule:
		if err := initiative.SetSchedule(nil, nil); err != nil {
			return nil, err
		}
	case req.StartDate != nil || req.EndDate != nil:
		start, end := initiative.StartDate, initiative.EndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		if err := initiative.SetSchedule(start, end); err != nil {
			return nil, err
		}
	}
	if req.Budget != nil {
		if err := initiative.SetBudget(*req.Budget); err != nil {
			return nil, err
		}
	}
	initiative.Touch()

	if err := s.initiativeRepo.Save(ctx, initiative); err != nil {
		return nil, err
	}
	return ToInitiativeResponse(initiative), nil
}

// Delete removes an initiative
func (s *InitiativeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.initiativeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.initiativeRepo.Delete(ctx, id)
}

func applyLabel(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}
