package handler

import (
	"github.com/execdash/backend/internal/application/configsvc"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// NavigationHandler handles navigation configuration endpoints
type NavigationHandler struct {
	BaseHandler
	navigationService *configsvc.NavigationService
}

// NewNavigationHandler creates a new NavigationHandler
func NewNavigationHandler(navigationService *configsvc.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigationService: navigationService}
}

// RegisterRoutes registers navigation routes on the API group
func (h *NavigationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	nav := rg.Group("/config/navigation")
	{
		nav.GET("", h.List)
		nav.POST("", h.Create)
		nav.POST("/reorder", h.Reorder)
		nav.PATCH("/:id", h.Update)
		nav.DELETE("/:id", h.Deactivate)
	}
}

// ReorderNavigationRequest replaces the ordering of active navigation entries
type ReorderNavigationRequest struct {
	Items []ReorderEntry `json:"items" binding:"required,min=1,dive"`
}

// List returns navigation entries in display order
func (h *NavigationHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	entries, err := h.navigationService.List(c.Request.Context(), includeInactive)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entries)
}

// Create adds a navigation entry at the end
func (h *NavigationHandler) Create(c *gin.Context) {
	var req configsvc.CreateNavigationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := h.navigationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entry)
}

// Update patches a navigation entry
func (h *NavigationHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req configsvc.UpdateNavigationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entry, err := h.navigationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeNavigationItemNotFound, "Navigation item not found")
		return
	}
	h.Success(c, entry)
}

// Reorder replaces the ordering of active navigation entries
func (h *NavigationHandler) Reorder(c *gin.Context) {
	var req ReorderNavigationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.navigationService.Reorder(c.Request.Context(), configsvc.NavigationReorderRequest{
		OrderedIDs: orderedIDs(req.Items),
	}); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate soft-deletes a navigation entry
func (h *NavigationHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.navigationService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeNavigationItemNotFound, "Navigation item not found")
		return
	}
	h.NoContent(c)
}
