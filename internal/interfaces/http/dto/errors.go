package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request binding fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
	// ErrCodeNotFound is the generic resource-missing code
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when creating a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeStoreFailure is surfaced when the store rejects an operation
	ErrCodeStoreFailure = "STORE_FAILURE"
)

// Per-entity not-found codes. Handlers translate the repository's generic
// not-found sentinel into the code for the entity they serve.
const (
	ErrCodeConfigItemNotFound     = "CONFIG_ITEM_NOT_FOUND"
	ErrCodeNavigationItemNotFound = "NAVIGATION_ITEM_NOT_FOUND"
	ErrCodeFieldMappingNotFound   = "FIELD_MAPPING_NOT_FOUND"
	ErrCodeInitiativeNotFound     = "INITIATIVE_NOT_FOUND"
	ErrCodeAchievementNotFound    = "ACHIEVEMENT_NOT_FOUND"
	ErrCodeUserNotFound           = "USER_NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeStoreFailure: http.StatusInternalServerError,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeRateLimited: http.StatusTooManyRequests,

	ErrCodeNotFound:               http.StatusNotFound,
	ErrCodeConfigItemNotFound:     http.StatusNotFound,
	ErrCodeNavigationItemNotFound: http.StatusNotFound,
	ErrCodeFieldMappingNotFound:   http.StatusNotFound,
	ErrCodeInitiativeNotFound:     http.StatusNotFound,
	ErrCodeAchievementNotFound:    http.StatusNotFound,
	ErrCodeUserNotFound:           http.StatusNotFound,

	ErrCodeAlreadyExists: http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code. Domain
// validation codes all start with INVALID_ and map to 400; anything unknown
// is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
