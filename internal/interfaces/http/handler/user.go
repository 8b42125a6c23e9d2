package handler

import (
	identityapp "github.com/execdash/backend/internal/application/identity"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user routes on the API group
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.GetByID)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
		users.POST("/:id/activate", h.Activate)
		users.POST("/:id/deactivate", h.Deactivate)
		users.POST("/:id/password", h.ChangePassword)
	}
}

// List returns users matching the query filters
func (h *UserHandler) List(c *gin.Context) {
	var filter identityapp.UserListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := normalizedPage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, users, total, page, pageSize)
}

// Create creates a user
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, user)
}

// GetByID returns one user
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeUserNotFound, "User not found")
		return
	}
	h.Success(c, user)
}

// Update patches a user's profile
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req identityapp.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeUserNotFound, "User not found")
		return
	}
	h.Success(c, user)
}

// Delete removes a user
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeUserNotFound, "User not found")
		return
	}
	h.NoContent(c)
}

// Activate re-enables a user account
func (h *UserHandler) Activate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeUserNotFound, "User not found")
		return
	}
	h.Success(c, user)
}

// Deactivate disables a user account
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeUserNotFound, "User not found")
		return
	}
	h.Success(c, user)
}

// ChangePassword replaces a user's password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req identityapp.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), id, req); err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeUserNotFound, "User not found")
		return
	}
	h.NoContent(c)
}
