package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is invalid, empty, or not in
// the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// InitiativeSortFields contains allowed sort fields for initiatives
var InitiativeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"team":       true,
	"status":     true,
	"priority":   true,
	"start_date": true,
	"end_date":   true,
	"budget":     true,
}

// AchievementSortFields contains allowed sort fields for achievements
var AchievementSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"title":       true,
	"category":    true,
	"achieved_on": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"email":        true,
	"display_name": true,
	"role":         true,
}
