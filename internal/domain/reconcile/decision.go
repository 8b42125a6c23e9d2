package reconcile

import (
	"strings"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/domain/taxonomy"
)

// DecisionAction is what a reviewer chose to do with one unmapped field
type DecisionAction string

const (
	// ActionUseExisting rewrites the field to an existing taxonomy label
	ActionUseExisting DecisionAction = "use-existing"
	// ActionCreateNew creates a taxonomy item and rewrites the field to it
	ActionCreateNew DecisionAction = "create-new"
	// ActionSkip removes the field from the record entirely
	ActionSkip DecisionAction = "skip"
	// ActionKeepAsIs leaves the original raw value untouched
	ActionKeepAsIs DecisionAction = "keep-as-is"
)

// MappingDecision is one reviewer decision for one field. Transient:
// consumed exactly once by the applier.
type MappingDecision struct {
	FieldName   string         `json:"field_name"`
	Action      DecisionAction `json:"action"`
	TargetValue string         `json:"target_value,omitempty"`
}

// Validate checks the decision is internally consistent before application
func (d MappingDecision) Validate() error {
	if _, ok := taxonomy.CategoryForField(d.FieldName); !ok {
		return shared.NewDomainError("INVALID_FIELD", "Field is not taxonomy-backed: "+d.FieldName)
	}
	switch d.Action {
	case ActionUseExisting, ActionCreateNew:
		if strings.TrimSpace(d.TargetValue) == "" {
			return shared.NewDomainError("INVALID_DECISION", "Target value is required for "+string(d.Action))
		}
	case ActionSkip, ActionKeepAsIs:
		// no target needed
	default:
		return shared.NewDomainError("INVALID_DECISION", "Unknown decision action: "+string(d.Action))
	}
	return nil
}

// CloneRecord copies a record so application never mutates the caller's map
func CloneRecord(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}
