// Package reconcile holds the pure half of the field reconciliation flow:
// judging which submitted values already resolve against the taxonomy and
// which need a human decision. Nothing in this package mutates state.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/execdash/backend/internal/domain/taxonomy"
)

// FieldVerification is the per-field judgement for one submission. It is
// transient: produced by Resolve, consumed by the review UI, never stored.
type FieldVerification struct {
	FieldName string         `json:"field_name"`
	RawValue  string         `json:"raw_value"`
	Matched   *taxonomy.Item `json:"matched_item,omitempty"`
	IsMapped  bool           `json:"is_mapped"`
}

// Result groups the verifications for one submission. Unmapped is the
// subset needing review, in fixed field declaration order.
type Result struct {
	Verifications []FieldVerification `json:"verifications"`
	Unmapped      []FieldVerification `json:"unmapped"`
}

// Resolve checks every taxonomy-backed field of the record against the
// given taxonomy snapshot and active aliases. It is a pure function of its
// inputs: calling it twice with the same arguments yields the same result,
// and the record is never modified.
//
// A field is mapped when its value is empty or absent (not applicable),
// when an active item's label matches under trim+case-fold, or when an
// active alias redirects the raw value to an item. Output order is always
// taxonomy.FieldBindings order, never input order.
func Resolve(record map[string]any, items []taxonomy.Item, aliases []taxonomy.FieldAlias) Result {
	byCategory := make(map[taxonomy.Category][]taxonomy.Item, len(taxonomy.AllCategories))
	for _, item := range items {
		if item.IsActive {
			byCategory[item.Category] = append(byCategory[item.Category], item)
		}
	}

	result := Result{
		Verifications: make([]FieldVerification, 0, len(taxonomy.FieldBindings)),
	}

	for _, binding := range taxonomy.FieldBindings {
		raw, present := stringValue(record[binding.Field])
		v := FieldVerification{FieldName: binding.Field, RawValue: raw}

		if !present || strings.TrimSpace(raw) == "" {
			// Absent or empty means "not applicable", not unmapped.
			v.IsMapped = true
			result.Verifications = append(result.Verifications, v)
			continue
		}

		if matched := matchItem(byCategory[binding.Category], raw); matched != nil {
			v.Matched = matched
			v.IsMapped = true
			result.Verifications = append(result.Verifications, v)
			continue
		}

		if target, ok := matchAlias(aliases, binding.Field, raw); ok {
			if matched := matchItem(byCategory[binding.Category], target); matched != nil {
				v.Matched = matched
				v.IsMapped = true
				result.Verifications = append(result.Verifications, v)
				continue
			}
		}

		result.Verifications = append(result.Verifications, v)
		result.Unmapped = append(result.Unmapped, v)
	}

	return result
}

// matchItem returns the first active item whose label equals raw under
// normalization, or nil
func matchItem(items []taxonomy.Item, raw string) *taxonomy.Item {
	normalized := taxonomy.NormalizeLabel(raw)
	for idx := range items {
		if taxonomy.NormalizeLabel(items[idx].Label) == normalized {
			return &items[idx]
		}
	}
	return nil
}

func matchAlias(aliases []taxonomy.FieldAlias, fieldName, raw string) (string, bool) {
	for idx := range aliases {
		if aliases[idx].Matches(fieldName, raw) {
			return aliases[idx].TargetLabel, true
		}
	}
	return "", false
}

// stringValue extracts a string from a record value. Only nil counts as
// absent; non-string scalars are stringified so they fail matching and
// surface as unmapped instead of passing silently.
func stringValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}
