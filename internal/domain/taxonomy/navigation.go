package taxonomy

import (
	"strings"
	"time"

	"github.com/execdash/backend/internal/domain/shared"
)

// NavigationItem represents one entry in the dashboard's configurable
// navigation. Ordering and soft-delete follow the same rules as taxonomy
// items.
type NavigationItem struct {
	shared.BaseEntity
	Label     string `gorm:"type:varchar(120);not null" json:"label"`
	Path      string `gorm:"type:varchar(255);not null" json:"path"`
	Icon      string `gorm:"type:varchar(60)" json:"icon,omitempty"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (NavigationItem) TableName() string {
	return "navigation_items"
}

// NewNavigationItem creates a new active navigation entry
func NewNavigationItem(label, path, icon string) (*NavigationItem, error) {
	label = strings.TrimSpace(label)
	if err := validateLabel(label); err != nil {
		return nil, err
	}
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "/") {
		return nil, shared.NewDomainError("INVALID_PATH", "Navigation path must start with /")
	}

	return &NavigationItem{
		BaseEntity: shared.NewBaseEntity(),
		Label:      label,
		Path:       path,
		Icon:       icon,
		IsActive:   true,
	}, nil
}

// Update applies a partial patch; empty strings leave fields untouched
func (n *NavigationItem) Update(label, path, icon string) error {
	if label != "" {
		label = strings.TrimSpace(label)
		if err := validateLabel(label); err != nil {
			return err
		}
		n.Label = label
	}
	if path != "" {
		if !strings.HasPrefix(path, "/") {
			return shared.NewDomainError("INVALID_PATH", "Navigation path must start with /")
		}
		n.Path = path
	}
	if icon != "" {
		n.Icon = icon
	}
	n.UpdatedAt = time.Now()
	return nil
}

// SetSortOrder sets the display position
func (n *NavigationItem) SetSortOrder(order int) {
	n.SortOrder = order
	n.UpdatedAt = time.Now()
}

// Deactivate soft-deletes the entry. Idempotent.
func (n *NavigationItem) Deactivate() {
	if !n.IsActive {
		return
	}
	n.IsActive = false
	n.UpdatedAt = time.Now()
}
