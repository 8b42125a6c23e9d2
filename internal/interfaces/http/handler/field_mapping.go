package handler

import (
	"github.com/execdash/backend/internal/application/configsvc"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// FieldMappingHandler handles field alias configuration and the
// verify/apply reconciliation flow
type FieldMappingHandler struct {
	BaseHandler
	fieldMappingService *configsvc.FieldMappingService
}

// NewFieldMappingHandler creates a new FieldMappingHandler
func NewFieldMappingHandler(fieldMappingService *configsvc.FieldMappingService) *FieldMappingHandler {
	return &FieldMappingHandler{fieldMappingService: fieldMappingService}
}

// RegisterRoutes registers alias CRUD and the reconciliation endpoints
func (h *FieldMappingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	mappings := rg.Group("/config/field-mappings")
	{
		mappings.GET("", h.List)
		mappings.POST("", h.Create)
		mappings.PATCH("/:id", h.Update)
		mappings.DELETE("/:id", h.Deactivate)
	}

	fields := rg.Group("/initiatives/fields")
	{
		fields.POST("/verify", h.Verify)
		fields.POST("/apply", h.Apply)
	}
}

// List returns all field aliases
func (h *FieldMappingHandler) List(c *gin.Context) {
	aliases, err := h.fieldMappingService.ListAliases(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, aliases)
}

// Create records a new raw-value alias
func (h *FieldMappingHandler) Create(c *gin.Context) {
	var req configsvc.CreateAliasRequest
	if !h.BindJSON(c, &req) {
		return
	}

	alias, err := h.fieldMappingService.CreateAlias(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, alias)
}

// Update patches an alias
func (h *FieldMappingHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req configsvc.UpdateAliasRequest
	if !h.BindJSON(c, &req) {
		return
	}

	alias, err := h.fieldMappingService.UpdateAlias(c.Request.Context(), id, req)
	if err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeFieldMappingNotFound, "Field mapping not found")
		return
	}
	h.Success(c, alias)
}

// Deactivate soft-deletes an alias
func (h *FieldMappingHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.fieldMappingService.DeactivateAlias(c.Request.Context(), id); err != nil {
		h.HandleEntityError(c, err, dto.ErrCodeFieldMappingNotFound, "Field mapping not found")
		return
	}
	h.NoContent(c)
}

// Verify runs the resolver over a submitted record and reports which
// taxonomy-backed fields are mapped
func (h *FieldMappingHandler) Verify(c *gin.Context) {
	var req configsvc.VerifyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.fieldMappingService.Verify(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Apply applies reviewer decisions to a record and returns the rewritten
// record plus per-decision outcomes
func (h *FieldMappingHandler) Apply(c *gin.Context) {
	var req configsvc.ApplyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.fieldMappingService.Apply(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
