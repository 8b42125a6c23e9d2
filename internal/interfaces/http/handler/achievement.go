package handler

import (
	dashboardapp "github.com/execdash/backend/internal/application/dashboard"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AchievementHandler handles achievement endpoints
type AchievementHandler struct {
	BaseHandler
	achievementService *dashboardapp.AchievementService
}

// NewAchievementHandler creates a new AchievementHandler
func NewAchievementHandler(achievementService *dashboardapp.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// RegisterRoutes registers achievement routes on the API group
func (h *AchievementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	achievements := rg.Group("/achievements")
	{
		achievements.GET("", h.List)
		achievements.POST("", h.Create)
		achievements.GET("/:id", h.GetByID)
		achievements.PATCH("/:id", h.Update)
		achievements.DELETE("/:id", h.Delete)
	}
}

// List returns achievements matching the query filters
func (h *AchievementHandler) List(c *gin.Context) {
	var filter dashboardapp.AchievementListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	achievements, total, err := h.achievementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := normalizedPage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, achievements, total, page, pageSize)
}

// Create records an achievement
func (h *AchievementHandler) Create(c *gin.Context) {
	var req dashboardapp.CreateAchievementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	achievement, err := h.achievementService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, achievement)
}

// GetByID returns one achievement
func (h *AchievementHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	achievement, err := h.achievementService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeAchievementNotFound, "Achievement not found")
		return
	}
	h.Success(c, achievement)
}

// Update patches an achievement
func (h *AchievementHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dashboardapp.UpdateAchievementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	achievement, err := h.achievementService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeAchievementNotFound, "Achievement not found")
		return
	}
	h.Success(c, achievement)
}

// Delete removes an achievement
func (h *AchievementHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.achievementService.Delete(c.Request.Context(), id); err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeAchievementNotFound, "Achievement not found")
		return
	}
	h.NoContent(c)
}
