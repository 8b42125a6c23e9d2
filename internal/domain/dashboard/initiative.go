package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxTitleLength is the maximum length for initiative and achievement titles
const MaxTitleLength = 200

// Initiative represents a strategic initiative tracked on the dashboard.
// The classification fields (Team, Status, ...) hold taxonomy labels; the
// reconciliation flow keeps them aligned with the configured taxonomy.
type Initiative struct {
	shared.BaseEntity
	Title          string          `gorm:"type:varchar(200);not null" json:"title"`
	Description    string          `gorm:"type:text" json:"description,omitempty"`
	OwnerID        *uuid.UUID      `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Team           string          `gorm:"type:varchar(120)" json:"team,omitempty"`
	Status         string          `gorm:"type:varchar(120)" json:"status,omitempty"`
	Priority       string          `gorm:"type:varchar(120)" json:"priority,omitempty"`
	BusinessImpact string          `gorm:"type:varchar(120)" json:"business_impact,omitempty"`
	ProductArea    string          `gorm:"type:varchar(120)" json:"product_area,omitempty"`
	ProcessStage   string          `gorm:"type:varchar(120)" json:"process_stage,omitempty"`
	GtmType        string          `gorm:"type:varchar(120)" json:"gtm_type,omitempty"`
	StartDate      *time.Time      `gorm:"type:date" json:"start_date,omitempty"`
	EndDate        *time.Time      `gorm:"type:date" json:"end_date,omitempty"`
	Budget         decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"budget"`
	CreatedBy      *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
}

// TableName returns the table name for GORM
func (Initiative) TableName() string {
	return "initiatives"
}

// NewInitiative creates an initiative with a validated title
func NewInitiative(title string) (*Initiative, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Initiative{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Budget:     decimal.Zero,
	}, nil
}

// Rename changes the initiative title
func (i *Initiative) Rename(title string) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	i.Title = title
	i.Touch()
	return nil
}

// SetSchedule sets the start/end dates, enforcing start <= end when both
// are present
func (i *Initiative) SetSchedule(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "Start date must not be after end date")
	}
	i.StartDate = start
	i.EndDate = end
	i.Touch()
	return nil
}

// SetBudget sets the budget; negative amounts are rejected
func (i *Initiative) SetBudget(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_BUDGET", "Budget cannot be negative")
	}
	i.Budget = amount
	i.Touch()
	return nil
}

// Period returns the initiative's own date range
func (i *Initiative) Period() DateRange {
	return DateRange{From: i.StartDate, To: i.EndDate}
}

func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return shared.NewDomainError("INVALID_TITLE", fmt.Sprintf("Title cannot exceed %d characters", MaxTitleLength))
	}
	return nil
}
