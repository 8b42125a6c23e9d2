package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserFilter narrows a user listing
type UserFilter struct {
	Role     Role
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter UserFilter) ([]User, int64, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
