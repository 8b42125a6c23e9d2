package handler

import (
	dashboardapp "github.com/execdash/backend/internal/application/dashboard"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// InitiativeHandler handles initiative endpoints
type InitiativeHandler struct {
	BaseHandler
	initiativeService *dashboardapp.InitiativeService
}

// NewInitiativeHandler creates a new InitiativeHandler
func NewInitiativeHandler(initiativeService *dashboardapp.InitiativeService) *InitiativeHandler {
	return &InitiativeHandler{initiativeService: initiativeService}
}

// RegisterRoutes registers initiative routes on the API group
func (h *InitiativeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	initiatives := rg.Group("/initiatives")
	{
		initiatives.GET("", h.List)
		initiatives.POST("", h.Create)
		initiatives.GET("/:id", h.GetByID)
		initiatives.PATCH("/:id", h.Update)
		initiatives.DELETE("/:id", h.Delete)
	}
}

// List returns initiatives matching the query filters, newest first
func (h *InitiativeHandler) List(c *gin.Context) {
	var filter dashboardapp.InitiativeListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	initiatives, total, err := h.initiativeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := normalizedPage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, initiatives, total, page, pageSize)
}

// Create creates an initiative
func (h *InitiativeHandler) Create(c *gin.Context) {
	var req dashboardapp.CreateInitiativeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	initiative, err := h.initiativeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, initiative)
}

// GetByID returns one initiative
func (h *InitiativeHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	initiative, err := h.initiativeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeInitiativeNotFound, "Initiative not found")
		return
	}
	h.Success(c, initiative)
}

// Update patches an initiative
func (h *InitiativeHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dashboardapp.UpdateInitiativeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	initiative, err := h.initiativeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeInitiativeNotFound, "Initiative not found")
		return
	}
	h.Success(c, initiative)
}

// Delete removes an initiative
func (h *InitiativeHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.initiativeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeInitiativeNotFound, "Initiative not found")
		return
	}
	h.NoContent(c)
}
