package identity

import (
	"context"
	"errors"
	"strings"

	domain "github.com/execdash/backend/internal/domain/identity"
	"github.com/execdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService handles user account operations
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create creates a new user. Emails are unique across the system.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	}

	user, err := domain.NewUser(email, req.DisplayName, req.Password, domain.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List retrieves users matching the filter
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := domain.UserFilter{
		Role:     domain.Role(filter.Role),
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	switch filter.Status {
	case "active":
		active := true
		domainFilter.IsActive = &active
	case "inactive":
		inactive := false
		domainFilter.IsActive = &inactive
	}

	users, total, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, 0, len(users))
	for idx := range users {
		responses = append(responses, *ToUserResponse(&users[idx]))
	}
	return responses, total, nil
}

// Update patches a user's profile
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	displayName, role := "", domain.Role("")
	if req.DisplayName != nil {
		displayName = *req.DisplayName
	}
	if req.Role != nil {
		role = domain.Role(*req.Role)
	}
	if err := user.Update(displayName, role); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ChangePassword replaces a user's password
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(req.Password); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// Delete removes a user permanently
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// Activate marks a user active
func (s *UserService) Activate(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate marks a user inactive
func (s *UserService) Deactivate(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *UserService) setActive(ctx context.Context, id uuid.UUID, active bool) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}
