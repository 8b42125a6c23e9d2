package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/execdash/backend/internal/infrastructure/persistence"
	"github.com/execdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles system and health endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers system routes on the API group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.Ping)
	rg.GET("/system/info", h.GetSystemInfo)
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string      `json:"name"`
	Version   string      `json:"version"`
	GoVersion string      `json:"go_version"`
	Uptime    string      `json:"uptime"`
	DBPool    *DBPoolInfo `json:"db_pool,omitempty"`
}

// DBPoolInfo summarizes the database connection pool
type DBPoolInfo struct {
	Open  int `json:"open"`
	InUse int `json:"in_use"`
	Idle  int `json:"idle"`
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Ping reports that the API is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}))
}

// GetSystemInfo returns version, uptime, and pool information
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Executive Dashboard API",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}
	if h.db != nil {
		if stats, err := h.db.Stats(); err == nil {
			info.DBPool = &DBPoolInfo{
				Open:  stats.OpenConnections,
				InUse: stats.InUse,
				Idle:  stats.Idle,
			}
		}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// Health pings the database and reports overall service health
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(HealthResponse{
			Status:   "degraded",
			Database: "unreachable",
		}))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:   "ok",
		Database: "ok",
	}))
}
