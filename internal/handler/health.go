package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/constants"
	"github.com/medicore-health/hms/pkg/redis"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache redis.Client
}

func NewHealthHandler(db *gorm.DB, cache redis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health reports liveness plus dependency status. The API is degraded but
// alive without Redis, and unhealthy without the database.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}

	dbStatus := "up"
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}
	checks["database"] = dbStatus

	cacheStatus := "disabled"
	if h.cache.IsEnabled() {
		cacheStatus = "up"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "down"
		}
	}
	checks["cache"] = cacheStatus

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":  overall,
		"service": constants.AppName,
		"version": constants.AppVersion,
		"checks":  checks,
	})
}
