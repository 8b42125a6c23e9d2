package dashboard

import (
	"context"
	"errors"

	domain "github.com/execdash/backend/internal/domain/dashboard"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AchievementService handles achievement operations
type AchievementService struct {
	achievementRepo domain.AchievementRepository
	initiativeRepo  domain.InitiativeRepository
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(achievementRepo domain.AchievementRepository, initiativeRepo domain.InitiativeRepository) *AchievementService {
	return &AchievementService{
		achievementRepo: achievementRepo,
		initiativeRepo:  initiativeRepo,
	}
}

// Create records a new achievement. A linked initiative must exist.
func (s *AchievementService) Create(ctx context.Context, req CreateAchievementRequest) (*AchievementResponse, error) {
	achievement, err := domain.NewAchievement(req.Title)
	if err != nil {
		return nil, err
	}

	if req.InitiativeID != nil {
		if err := s.ensureInitiativeExists(ctx, *req.InitiativeID); err != nil {
			return nil, err
		}
		achievement.InitiativeID = req.InitiativeID
	}

	achievement.Description = req.Description
	achievement.Category = req.Category
	achievement.OwnerID = req.OwnerID
	achievement.CreatedBy = req.CreatedBy
	achievement.AchievedOn = req.AchievedOn

	if err := s.achievementRepo.Save(ctx, achievement); err != nil {
		return nil, err
	}
	return ToAchievementResponse(achievement), nil
}

// GetByID retrieves an achievement by ID
func (s *AchievementService) GetByID(ctx context.Context, id uuid.UUID) (*AchievementResponse, error) {
	achievement, err := s.achievementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAchievementResponse(achievement), nil
}

// List retrieves achievements matching the filter
func (s *AchievementService) List(ctx context.Context, filter AchievementListFilter) ([]AchievementResponse, int64, error) {
	page, pageSize := domain.NormalizePagination(filter.Page, filter.PageSize)
	domainFilter := domain.AchievementFilter{
		OwnerID:   filter.OwnerID,
		CreatedBy: filter.CreatedBy,
		Category:  filter.Category,
		From:      filter.From,
		To:        filter.To,
		Page:      page,
		PageSize:  pageSize,
	}

	achievements, total, err := s.achievementRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AchievementResponse, 0, len(achievements))
	for idx := range achievements {
		responses = append(responses, *ToAchievementResponse(&achievements[idx]))
	}
	return responses, total, nil
}

// Update patches an achievement
func (s *AchievementService) Update(ctx context.Context, id uuid.UUID, req UpdateAchievementRequest) (*AchievementResponse, error) {
	achievement, err := s.achievementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := achievement.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		achievement.Description = *req.Description
	}
	if req.Category != nil {
		achievement.Category = *req.Category
	}
	if req.InitiativeID != nil {
		if err := s.ensureInitiativeExists(ctx, *req.InitiativeID); err != nil {
			return nil, err
		}
		achievement.InitiativeID = req.InitiativeID
	}
	if req.OwnerID != nil {
		achievement.OwnerID = req.OwnerID
	}
	if req.AchievedOn != nil {
		achievement.AchievedOn = req.AchievedOn
	}
	achievement.Touch()

	if err := s.achievementRepo.Save(ctx, achievement); err != nil {
		return nil, err
	}
	return ToAchievementResponse(achievement), nil
}

// Delete removes an achievement
func (s *AchievementService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.achievementRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.achievementRepo.Delete(ctx, id)
}

func (s *AchievementService) ensureInitiativeExists(ctx context.Context, id uuid.UUID) error {
	if _, err := s.initiativeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_INITIATIVE", "Linked initiative not found")
		}
		return err
	}
	return nil
}
