package identity

import (
	"net/mail"
	"strings"

	"github.com/execdash/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role controls what a user may change through the API
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// IsValid checks whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

const bcryptCost = 12

// User represents a dashboard account
type User struct {
	shared.BaseEntity
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	DisplayName  string `gorm:"type:varchar(120);not null" json:"display_name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates an active user with a hashed password
func NewUser(email, displayName, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Display name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}, nil
}

// Update applies a partial profile change. Empty strings leave the field
// untouched; a zero Role keeps the current role.
func (u *User) Update(displayName string, role Role) error {
	if role != "" && !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if displayName = strings.TrimSpace(displayName); displayName != "" {
		u.DisplayName = displayName
	}
	if role != "" {
		u.Role = role
	}
	u.Touch()
	return nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Activate marks the user active. Idempotent.
func (u *User) Activate() {
	if u.IsActive {
		return
	}
	u.IsActive = true
	u.Touch()
}

// Deactivate marks the user inactive. Idempotent.
func (u *User) Deactivate() {
	if !u.IsActive {
		return
	}
	u.IsActive = false
	u.Touch()
}

func hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("HASH_FAILURE", "Failed to hash password")
	}
	return string(hash), nil
}
