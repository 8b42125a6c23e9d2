package identity

import (
	"time"

	domain "github.com/execdash/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CreateUserRequest is the request to create a user
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email,max=255"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=120"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	Role        string `json:"role" binding:"required,oneof=admin editor viewer"`
}

// UpdateUserRequest patches a user's profile
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,min=1,max=120"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin editor viewer"`
}

// ChangePasswordRequest replaces a user's password
type ChangePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// UserListFilter narrows a user listing
type UserListFilter struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin editor viewer"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search   string `form:"search" binding:"omitempty,max=120"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UserResponse is the API shape of a user. The password hash never leaves
// the domain.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain user to its API shape
func ToUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
