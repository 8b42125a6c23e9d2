package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
)

// Category identifies one of the fixed configurable value sets used to
// classify initiatives. The set is closed: new categories require a code
// change, new values within a category do not.
type Category string

const (
	CategoryTeams           Category = "teams"
	CategoryStatuses        Category = "statuses"
	CategoryPriorities      Category = "priorities"
	CategoryBusinessImpacts Category = "business_impacts"
	CategoryProductAreas    Category = "product_areas"
	CategoryProcessStages   Category = "process_stages"
	CategoryGtmTypes        Category = "gtm_types"
)

// AllCategories lists every valid category in declaration order
var AllCategories = []Category{
	CategoryTeams,
	CategoryStatuses,
	CategoryPriorities,
	CategoryBusinessImpacts,
	CategoryProductAreas,
	CategoryProcessStages,
	CategoryGtmTypes,
}

// IsValid returns true if the category is one of the fixed set
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// FieldBinding ties a submitted form field name to the taxonomy category
// that backs it
type FieldBinding struct {
	Field    string
	Category Category
}

// FieldBindings lists the taxonomy-backed field names in their fixed
// declaration order. Resolution results are always emitted in this order
// so the review UI stays stable across submissions.
var FieldBindings = []FieldBinding{
	{Field: "team", Category: CategoryTeams},
	{Field: "status", Category: CategoryStatuses},
	{Field: "priority", Category: CategoryPriorities},
	{Field: "businessImpact", Category: CategoryBusinessImpacts},
	{Field: "productArea", Category: CategoryProductAreas},
	{Field: "processStage", Category: CategoryProcessStages},
	{Field: "gtmType", Category: CategoryGtmTypes},
}

// CategoryForField returns the category backing a form field name
func CategoryForField(field string) (Category, bool) {
	for _, b := range FieldBindings {
		if b.Field == field {
			return b.Category, true
		}
	}
	return "", false
}

var labelFolder = cases.Fold()

// NormalizeLabel trims and case-folds a label for comparison. The stored
// label always preserves its original casing; normalization exists only so
// "on track" and "On Track" resolve to the same item.
func NormalizeLabel(label string) string {
	return labelFolder.String(strings.TrimSpace(label))
}
