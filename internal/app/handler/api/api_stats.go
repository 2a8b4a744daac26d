package api

import (
	"context"
	"net/http"

	"maritime_registry/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type StatsHandler struct {
	Repository interface {
		GetDashboardStats(ctx context.Context) (ds.DashboardStats, error)
		Ping(ctx context.Context) error
	}
}

// @Summary Dashboard counters
// @Tags stats
// @Produce json
// @Success 200 {object} ds.DashboardStats
// @Router /api/stats [get]
func (h *StatsHandler) GetStatsAPI(c *gin.Context) {
	stats, err := h.Repository.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, "GetStatsAPI", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Liveness with a database ping
// @Tags stats
// @Produce json
// @Success 200 {object} object "status, database"
// @Failure 503 {object} object "status, database"
// @Router /api/health [get]
func (h *StatsHandler) HealthAPI(c *gin.Context) {
	if err := h.Repository.Ping(c.Request.Context()); err != nil {
		logrus.Errorf("HealthAPI: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
