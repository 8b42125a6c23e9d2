package handler

import (
	"github.com/execdash/backend/internal/domain/dashboard"
)

// normalizedPage mirrors the clamping the services apply before hitting the
// store, so the pagination meta matches the returned page
func normalizedPage(page, pageSize int) (int, int) {
	return dashboard.NormalizePagination(page, pageSize)
}
