package taxonomy

import (
	"strings"
	"time"

	"github.com/execdash/backend/internal/domain/shared"
)

// FieldAlias maps a recurring raw submission value to an existing taxonomy
// label, so the same free-text value does not come back for review on every
// submission. Aliases grow over time as reviewers resolve unmapped fields.
type FieldAlias struct {
	shared.BaseEntity
	FieldName   string `gorm:"type:varchar(60);not null;index:idx_field_aliases_field" json:"field_name"`
	RawValue    string `gorm:"type:varchar(255);not null" json:"raw_value"`
	TargetLabel string `gorm:"type:varchar(120);not null" json:"target_label"`
	IsActive    bool   `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (FieldAlias) TableName() string {
	return "field_aliases"
}

// NewFieldAlias creates an alias from a raw value to a taxonomy label
func NewFieldAlias(fieldName, rawValue, targetLabel string) (*FieldAlias, error) {
	if _, ok := CategoryForField(fieldName); !ok {
		return nil, shared.NewDomainError("INVALID_FIELD", "Field is not taxonomy-backed: "+fieldName)
	}
	rawValue = strings.TrimSpace(rawValue)
	if rawValue == "" {
		return nil, shared.NewDomainError("INVALID_RAW_VALUE", "Raw value cannot be empty")
	}
	targetLabel = strings.TrimSpace(targetLabel)
	if err := validateLabel(targetLabel); err != nil {
		return nil, err
	}

	return &FieldAlias{
		BaseEntity:  shared.NewBaseEntity(),
		FieldName:   fieldName,
		RawValue:    rawValue,
		TargetLabel: targetLabel,
		IsActive:    true,
	}, nil
}

// Update applies a partial patch; empty strings leave fields untouched
func (a *FieldAlias) Update(rawValue, targetLabel string) error {
	if rawValue != "" {
		a.RawValue = strings.TrimSpace(rawValue)
	}
	if targetLabel != "" {
		targetLabel = strings.TrimSpace(targetLabel)
		if err := validateLabel(targetLabel); err != nil {
			return err
		}
		a.TargetLabel = targetLabel
	}
	a.UpdatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the alias. Idempotent.
func (a *FieldAlias) Deactivate() {
	if !a.IsActive {
		return
	}
	a.IsActive = false
	a.UpdatedAt = time.Now()
}

// Matches reports whether the alias applies to the given field and raw value
// under trim + case folding
func (a *FieldAlias) Matches(fieldName, raw string) bool {
	return a.IsActive && a.FieldName == fieldName &&
		NormalizeLabel(a.RawValue) == NormalizeLabel(raw)
}
