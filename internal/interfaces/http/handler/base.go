package handler

import (
	"errors"
	"net/http"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/execdash/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID set by the RequestID middleware
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// BindJSON binds the request body, writing the error response itself.
// Returns false when binding failed and the handler should return.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			middleware.HandleValidationError(c, err)
		} else {
			h.BadRequest(c, "Invalid request body")
		}
		return false
	}
	return true
}

// BindQuery binds the query string, writing the error response itself
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			middleware.HandleValidationError(c, err)
		} else {
			h.BadRequest(c, "Invalid query parameters")
		}
		return false
	}
	return true
}

// parseID parses the :id path parameter, writing the error response itself
func (h *BaseHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 response with the given entity code
func (h *BaseHandler) NotFound(c *gin.Context, code, message string) {
	h.Error(c, http.StatusNotFound, code, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleDomainError converts a domain error to an HTTP response, deriving
// the status code from the error code
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	// Store and connectivity failures stay opaque to the client
	h.InternalError(c, "An unexpected error occurred")
}

// HandleEntityError is HandleDomainError with the generic not-found sentinel
// translated into the per-entity code of the handler's resource
func (h *BaseHandler) HandleEntityError(c *gin.Context, err error, notFoundCode, notFoundMessage string) {
	if errors.Is(err, shared.ErrNotFound) {
		h.NotFound(c, notFoundCode, notFoundMessage)
		return
	}
	h.HandleDomainError(c, err)
}
