package configsvc

import (
	"time"

	"github.com/execdash/backend/internal/domain/reconcile"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
)

// CreateItemRequest is the request to add a taxonomy item
type CreateItemRequest struct {
	Category string `json:"category" binding:"required"`
	Label    string `json:"label" binding:"required,min=1,max=120"`
	Color    string `json:"color" binding:"omitempty,max=20"`
}

// UpdateItemRequest patches a taxonomy item; nil fields stay untouched
type UpdateItemRequest struct {
	Label *string `json:"label" binding:"omitempty,min=1,max=120"`
	Color *string `json:"color" binding:"omitempty,max=20"`
}

// ReorderRequest replaces the ordering of a category's active items.
// OrderedIDs must be a permutation of the category's active item IDs.
type ReorderRequest struct {
	Category   string      `json:"category" binding:"required"`
	OrderedIDs []uuid.UUID `json:"ordered_ids" binding:"required,min=1"`
}

// ItemResponse is the API shape of a taxonomy item
type ItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Label     string    `json:"label"`
	Color     string    `json:"color,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToItemResponse converts a domain item to its API shape
func ToItemResponse(item *taxonomy.Item) *ItemResponse {
	return &ItemResponse{
		ID:        item.ID,
		Category:  string(item.Category),
		Label:     item.Label,
		Color:     item.Color,
		SortOrder: item.SortOrder,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// CreateNavigationRequest is the request to add a navigation entry
type CreateNavigationRequest struct {
	Label string `json:"label" binding:"required,min=1,max=120"`
	Path  string `json:"path" binding:"required,startswith=/"`
	Icon  string `json:"icon" binding:"omitempty,max=60"`
}

// UpdateNavigationRequest patches a navigation entry
type UpdateNavigationRequest struct {
	Label *string `json:"label" binding:"omitempty,min=1,max=120"`
	Path  *string `json:"path" binding:"omitempty,startswith=/"`
	Icon  *string `json:"icon" binding:"omitempty,max=60"`
}

// NavigationReorderRequest replaces the ordering of active navigation entries
type NavigationReorderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" binding:"required,min=1"`
}

// NavigationResponse is the API shape of a navigation entry
type NavigationResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Path      string    `json:"path"`
	Icon      string    `json:"icon,omitempty"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToNavigationResponse converts a domain navigation item to its API shape
func ToNavigationResponse(item *taxonomy.NavigationItem) *NavigationResponse {
	return &NavigationResponse{
		ID:        item.ID,
		Label:     item.Label,
		Path:      item.Path,
		Icon:      item.Icon,
		SortOrder: item.SortOrder,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// CreateAliasRequest maps a recurring raw value to a taxonomy label
type CreateAliasRequest struct {
	FieldName   string `json:"field_name" binding:"required"`
	RawValue    string `json:"raw_value" binding:"required,min=1,max=255"`
	TargetLabel string `json:"target_label" binding:"required,min=1,max=120"`
}

// UpdateAliasRequest patches an alias; nil fields stay untouched
type UpdateAliasRequest struct {
	RawValue    *string `json:"raw_value" binding:"omitempty,min=1,max=255"`
	TargetLabel *string `json:"target_label" binding:"omitempty,min=1,max=120"`
}

// AliasResponse is the API shape of a field alias
type AliasResponse struct {
	ID          uuid.UUID `json:"id"`
	FieldName   string    `json:"field_name"`
	RawValue    string    `json:"raw_value"`
	TargetLabel string    `json:"target_label"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToAliasResponse converts a domain alias to its API shape
func ToAliasResponse(alias *taxonomy.FieldAlias) *AliasResponse {
	return &AliasResponse{
		ID:          alias.ID,
		FieldName:   alias.FieldName,
		RawValue:    alias.RawValue,
		TargetLabel: alias.TargetLabel,
		IsActive:    alias.IsActive,
		CreatedAt:   alias.CreatedAt,
		UpdatedAt:   alias.UpdatedAt,
	}
}

// VerifyRequest carries one submitted record for field resolution
type VerifyRequest struct {
	Record map[string]any `json:"record" binding:"required"`
}

// VerificationResponse is the API shape of one field judgement
type VerificationResponse struct {
	FieldName string        `json:"field_name"`
	RawValue  string        `json:"raw_value"`
	Matched   *ItemResponse `json:"matched_item,omitempty"`
	IsMapped  bool          `json:"is_mapped"`
}

// VerifyResponse groups the judgements for one record
type VerifyResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	Unmapped      []VerificationResponse `json:"unmapped"`
}

// ToVerifyResponse converts a resolution result to its API shape
func ToVerifyResponse(result reconcile.Result) *VerifyResponse {
	out := &VerifyResponse{
		Verifications: make([]VerificationResponse, 0, len(result.Verifications)),
		Unmapped:      make([]VerificationResponse, 0, len(result.Unmapped)),
	}
	for _, v := range result.Verifications {
		out.Verifications = append(out.Verifications, toVerificationResponse(v))
	}
	for _, v := range result.Unmapped {
		out.Unmapped = append(out.Unmapped, toVerificationResponse(v))
	}
	return out
}

func toVerificationResponse(v reconcile.FieldVerification) VerificationResponse {
	resp := VerificationResponse{
		FieldName: v.FieldName,
		RawValue:  v.RawValue,
		IsMapped:  v.IsMapped,
	}
	if v.Matched != nil {
		resp.Matched = ToItemResponse(v.Matched)
	}
	return resp
}

// DecisionRequest is one reviewer decision for one unmapped field
type DecisionRequest struct {
	FieldName   string `json:"field_name" binding:"required"`
	Action      string `json:"action" binding:"required,oneof=use-existing create-new skip keep-as-is"`
	TargetValue string `json:"target_value" binding:"omitempty,max=120"`
}

// ApplyRequest carries a record plus the decisions to apply to it
type ApplyRequest struct {
	Record    map[string]any    `json:"record" binding:"required"`
	Decisions []DecisionRequest `json:"decisions" binding:"required,min=1,dive"`
}

// DecisionOutcome reports how one decision fared during application
type DecisionOutcome struct {
	FieldName string `json:"field_name"`
	Action    string `json:"action"`
	Applied   bool   `json:"applied"`
	Error     string `json:"error,omitempty"`
}

// ApplyResponse is the rewritten record plus per-decision outcomes.
// Failed decisions leave their field untouched; applied ones are not
// rolled back when a later decision fails.
type ApplyResponse struct {
	Record       map[string]any    `json:"record"`
	Outcomes     []DecisionOutcome `json:"outcomes"`
	CreatedItems []ItemResponse    `json:"created_items"`
}
