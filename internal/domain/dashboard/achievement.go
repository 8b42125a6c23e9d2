package dashboard

import (
	"strings"
	"time"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Achievement represents a delivered win, optionally tied to an initiative
type Achievement struct {
	shared.BaseEntity
	Title        string     `gorm:"type:varchar(200);not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	Category     string     `gorm:"type:varchar(120);index" json:"category,omitempty"`
	InitiativeID *uuid.UUID `gorm:"type:uuid;index" json:"initiative_id,omitempty"`
	OwnerID      *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	AchievedOn   *time.Time `gorm:"type:date" json:"achieved_on,omitempty"`
}

// TableName returns the table name for GORM
func (Achievement) TableName() string {
	return "achievements"
}

// NewAchievement creates an achievement with a validated title
func NewAchievement(title string) (*Achievement, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	return &Achievement{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
	}, nil
}

// Rename changes the achievement title
func (a *Achievement) Rename(title string) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	a.Title = title
	a.Touch()
	return nil
}
