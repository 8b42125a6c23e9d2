package dashboard

import (
	"time"

	domain "github.com/execdash/backend/internal/domain/dashboard"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInitiativeRequest is the request to create an initiative
type CreateInitiativeRequest struct {
	Title          string           `json:"title" binding:"required,min=1,max=200"`
	Description    string           `json:"description" binding:"max=5000"`
	OwnerID        *uuid.UUID       `json:"owner_id"`
	Team           string           `json:"team" binding:"max=120"`
	Status         string           `json:"status" binding:"max=120"`
	Priority       string           `json:"priority" binding:"max=120"`
	BusinessImpact string           `json:"business_impact" binding:"max=120"`
	ProductArea    string           `json:"product_area" binding:"max=120"`
	ProcessStage   string           `json:"process_stage" binding:"max=120"`
	GtmType        string           `json:"gtm_type" binding:"max=120"`
	StartDate      *time.Time       `json:"start_date" time_format:"2006-01-02"`
	EndDate        *time.Time       `json:"end_date" time_format:"2006-01-02"`
	Budget         *decimal.Decimal `json:"budget"`
	CreatedBy      *uuid.UUID       `json:"created_by"`
}

// UpdateInitiativeRequest patches an initiative; nil fields stay untouched.
// Date and classification fields use a present-but-null convention: a null
// value clears the field, an absent key keeps it.
type UpdateInitiativeRequest struct {
	Title          *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string          `json:"description" binding:"omitempty,max=5000"`
	OwnerID        *uuid.UUID       `json:"owner_id"`
	Team           *string          `json:"team" binding:"omitempty,max=120"`
	Status         *string          `json:"status" binding:"omitempty,max=120"`
	Priority       *string          `json:"priority" binding:"omitempty,max=120"`
	BusinessImpact *string          `json:"business_impact" binding:"omitempty,max=120"`
	ProductArea    *string          `json:"product_area" binding:"omitempty,max=120"`
	ProcessStage   *string          `json:"process_stage" binding:"omitempty,max=120"`
	GtmType        *string          `json:"gtm_type" binding:"omitempty,max=120"`
	StartDate      *time.Time       `json:"start_date" time_format:"2006-01-02"`
	EndDate        *time.Time       `json:"end_date" time_format:"2006-01-02"`
	ClearSchedule  bool             `json:"clear_schedule"`
	Budget         *decimal.Decimal `json:"budget"`
}

// InitiativeListFilter narrows an initiative listing, bound from the query
// string
type InitiativeListFilter struct {
	OwnerID  *uuid.UUID `form:"owner_id"`
	Team     string     `form:"team" binding:"omitempty,max=120"`
	Status   string     `form:"status" binding:"omitempty,max=120"`
	Priority string     `form:"priority" binding:"omitempty,max=120"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InitiativeResponse is the API shape of an initiative
type InitiativeResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	OwnerID        *uuid.UUID      `json:"owner_id,omitempty"`
	Team           string          `json:"team,omitempty"`
	Status         string          `json:"status,omitempty"`
	Priority       string          `json:"priority,omitempty"`
	BusinessImpact string          `json:"business_impact,omitempty"`
	ProductArea    string          `json:"product_area,omitempty"`
	ProcessStage   string          `json:"process_stage,omitempty"`
	GtmType        string          `json:"gtm_type,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	Budget         decimal.Decimal `json:"budget"`
	CreatedBy      *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToInitiativeResponse converts a domain initiative to its API shape
func ToInitiativeResponse(i *domain.Initiative) *InitiativeResponse {
	return &InitiativeResponse{
		ID:             i.ID,
		Title:          i.Title,
		Description:    i.Description,
		OwnerID:        i.OwnerID,
		Team:           i.Team,
		Status:         i.Status,
		Priority:       i.Priority,
		BusinessImpact: i.BusinessImpact,
		ProductArea:    i.ProductArea,
		ProcessStage:   i.ProcessStage,
		GtmType:        i.GtmType,
		StartDate:      i.StartDate,
		EndDate:        i.EndDate,
		Budget:         i.Budget,
		CreatedBy:      i.CreatedBy,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// CreateAchievementRequest is the request to record an achievement
type CreateAchievementRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=200"`
	Description  string     `json:"description" binding:"max=5000"`
	Category     string     `json:"category" binding:"max=120"`
	InitiativeID *uuid.UUID `json:"initiative_id"`
	OwnerID      *uuid.UUID `json:"owner_id"`
	CreatedBy    *uuid.UUID `json:"created_by"`
	AchievedOn   *time.Time `json:"achieved_on" time_format:"2006-01-02"`
}

// UpdateAchievementRequest patches an achievement
type UpdateAchievementRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string    `json:"description" binding:"omitempty,max=5000"`
	Category     *string    `json:"category" binding:"omitempty,max=120"`
	InitiativeID *uuid.UUID `json:"initiative_id"`
	OwnerID      *uuid.UUID `json:"owner_id"`
	AchievedOn   *time.Time `json:"achieved_on" time_format:"2006-01-02"`
}

// AchievementListFilter narrows an achievement listing
type AchievementListFilter struct {
	OwnerID   *uuid.UUID `form:"owner_id"`
	CreatedBy *uuid.UUID `form:"created_by"`
	Category  string     `form:"category" binding:"omitempty,max=120"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AchievementResponse is the API shape of an achievement
type AchievementResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category,omitempty"`
	InitiativeID *uuid.UUID `json:"initiative_id,omitempty"`
	OwnerID      *uuid.UUID `json:"owner_id,omitempty"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	AchievedOn   *time.Time `json:"achieved_on,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToAchievementResponse converts a domain achievement to its API shape
func ToAchievementResponse(a *domain.Achievement) *AchievementResponse {
	return &AchievementResponse{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		InitiativeID: a.InitiativeID,
		OwnerID:      a.OwnerID,
		CreatedBy:    a.CreatedBy,
		AchievedOn:   a.AchievedOn,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
