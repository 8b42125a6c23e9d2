package persistence

import (
	"errors"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

// translateError maps driver-level errors to domain errors. Unique-index
// violations become ALREADY_EXISTS so concurrent writers racing past the
// application-level duplicate check get a clean conflict instead of a 500.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return shared.ErrAlreadyExists
	}
	return err
}
