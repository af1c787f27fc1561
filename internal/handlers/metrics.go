package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RachitaModiTR/PlanPoker/internal/services"
)

// HandleMetrics returns WebSocket server metrics
func HandleMetrics(metrics *services.Metrics, store *services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := metrics.Snapshot(int64(store.Count()))
		c.JSON(http.StatusOK, snapshot)
	}
}

// HandleHealth returns server health status
func HandleHealth(metrics *services.Metrics, store *services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := metrics.Snapshot(int64(store.Count()))

		status := http.StatusOK
		if snapshot.HealthStatus == "critical" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"status":             snapshot.HealthStatus,
			"active_connections": snapshot.ActiveConnections,
			"active_sessions":    snapshot.ActiveSessions,
			"uptime_seconds":     snapshot.UptimeSeconds,
		})
	}
}
