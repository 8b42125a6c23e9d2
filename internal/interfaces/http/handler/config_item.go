package handler

import (
	"sort"

	"github.com/execdash/backend/internal/application/configsvc"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConfigItemHandler handles taxonomy item configuration endpoints
type ConfigItemHandler struct {
	BaseHandler
	taxonomyService *configsvc.TaxonomyService
}

// NewConfigItemHandler creates a new ConfigItemHandler
func NewConfigItemHandler(taxonomyService *configsvc.TaxonomyService) *ConfigItemHandler {
	return &ConfigItemHandler{taxonomyService: taxonomyService}
}

// RegisterRoutes registers config item routes on the API group
func (h *ConfigItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/config/items")
	{
		items.GET("", h.List)
		items.POST("", h.Create)
		items.POST("/reorder", h.Reorder)
		items.PATCH("/:id", h.Update)
		items.DELETE("/:id", h.Deactivate)
		items.POST("/:id/activate", h.Activate)
	}
}

// ListItemsQuery narrows the item listing
type ListItemsQuery struct {
	Category        string `form:"category"`
	IncludeInactive bool   `form:"include_inactive"`
}

// ReorderEntry pairs an item ID with its desired position
type ReorderEntry struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Order int       `json:"order" binding:"min=0"`
}

// ReorderItemsRequest replaces the ordering of a category's active items
type ReorderItemsRequest struct {
	Category string         `json:"category" binding:"required"`
	Items    []ReorderEntry `json:"items" binding:"required,min=1,dive"`
}

// List returns the items of one category, or all categories grouped when no
// category is given
func (h *ConfigItemHandler) List(c *gin.Context) {
	var query ListItemsQuery
	if !h.BindQuery(c, &query) {
		return
	}

	if query.Category == "" {
		grouped, err := h.taxonomyService.ListAll(c.Request.Context())
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, grouped)
		return
	}

	items, err := h.taxonomyService.List(c.Request.Context(), query.Category, query.IncludeInactive)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// Create adds an item at the end of its category
func (h *ConfigItemHandler) Create(c *gin.Context) {
	var req configsvc.CreateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.taxonomyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// Update patches an item's label or color
func (h *ConfigItemHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req configsvc.UpdateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.taxonomyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeConfigItemNotFound, "Config item not found")
		return
	}
	h.Success(c, item)
}

// Reorder replaces the ordering of a category's active items. The submitted
// set must be a permutation of the category's active IDs.
func (h *ConfigItemHandler) Reorder(c *gin.Context) {
	var req ReorderItemsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.taxonomyService.Reorder(c.Request.Context(), configsvc.ReorderRequest{
		Category:   req.Category,
		OrderedIDs: orderedIDs(req.Items),
	}); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Deactivate soft-deletes an item and compacts the remaining order
func (h *ConfigItemHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeConfigItemNotFound, "Config item not found")
		return
	}
	h.NoContent(c)
}

// Activate restores a soft-deleted item at the end of its category
func (h *ConfigItemHandler) Activate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	item, err := h.taxonomyService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeConfigItemNotFound, "Config item not found")
		return
	}
	h.Success(c, item)
}

// orderedIDs sorts entries by their requested position and returns the IDs
func orderedIDs(entries []ReorderEntry) []uuid.UUID {
	sorted := make([]ReorderEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	ids := make([]uuid.UUID, 0, len(sorted))
	for _, entry := range sorted {
		ids = append(ids, entry.ID)
	}
	return ids
}
