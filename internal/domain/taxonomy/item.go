package taxonomy

import (
	"fmt"
	"strings"
	"time"

	"github.com/execdash/backend/internal/domain/shared"
)

// MaxLabelLength is the maximum length of a taxonomy item label
const MaxLabelLength = 120

// ItemColors is the fixed palette a taxonomy item may be tagged with
var ItemColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"amber":  true,
	"red":    true,
	"purple": true,
	"pink":   true,
	"slate":  true,
	"cyan":   true,
}

// Item represents one labeled value within a taxonomy category.
// Items are never hard-deleted: deactivation removes them from resolution
// lookups while keeping them for audit.
type Item struct {
	shared.BaseEntity
	Category  Category `gorm:"type:varchar(40);not null;index:idx_taxonomy_items_category" json:"category"`
	Label     string   `gorm:"type:varchar(120);not null" json:"label"`
	Color     string   `gorm:"type:varchar(20)" json:"color,omitempty"`
	SortOrder int      `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool     `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "taxonomy_items"
}

// NewItem creates a new active taxonomy item. The caller assigns SortOrder.
func NewItem(category Category, label, color string) (*Item, error) {
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", fmt.Sprintf("Unknown taxonomy category %q", category))
	}
	label = strings.TrimSpace(label)
	if err := validateLabel(label); err != nil {
		return nil, err
	}
	if err := validateColor(color); err != nil {
		return nil, err
	}

	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		Category:   category,
		Label:      label,
		Color:      color,
		IsActive:   true,
	}, nil
}

// Rename changes the item's label, preserving the caller's casing
func (i *Item) Rename(label string) error {
	label = strings.TrimSpace(label)
	if err := validateLabel(label); err != nil {
		return err
	}
	i.Label = label
	i.UpdatedAt = time.Now()
	return nil
}

// SetColor changes the item's color tag; an empty color clears it
func (i *Item) SetColor(color string) error {
	if err := validateColor(color); err != nil {
		return err
	}
	i.Color = color
	i.UpdatedAt = time.Now()
	return nil
}

// SetSortOrder sets the display position within the category
func (i *Item) SetSortOrder(order int) {
	i.SortOrder = order
	i.UpdatedAt = time.Now()
}

// Deactivate soft-deletes the item. Idempotent.
func (i *Item) Deactivate() {
	if !i.IsActive {
		return
	}
	i.IsActive = false
	i.UpdatedAt = time.Now()
}

// Activate restores a soft-deleted item. Idempotent.
func (i *Item) Activate() {
	if i.IsActive {
		return
	}
	i.IsActive = true
	i.UpdatedAt = time.Now()
}

// MatchesLabel reports whether the item's label equals the given raw value
// under trim + case folding
func (i *Item) MatchesLabel(raw string) bool {
	return NormalizeLabel(i.Label) == NormalizeLabel(raw)
}

func validateLabel(label string) error {
	if label == "" {
		return shared.NewDomainError("INVALID_LABEL", "Label cannot be empty")
	}
	if len(label) > MaxLabelLength {
		return shared.NewDomainError("INVALID_LABEL", fmt.Sprintf("Label cannot exceed %d characters", MaxLabelLength))
	}
	return nil
}

func validateColor(color string) error {
	if color == "" {
		return nil
	}
	if !ItemColors[color] {
		return shared.NewDomainError("INVALID_COLOR", fmt.Sprintf("Color %q is not in the palette", color))
	}
	return nil
}
