package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceName = "import-cost-api"

type HealthHandler struct {
	pool    *pgxpool.Pool
	started time.Time
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool, started: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	uptime := time.Since(h.started).Round(time.Second).String()

	if err := h.pool.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"service":  serviceName,
			"database": "disconnected",
			"uptime":   uptime,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"database": "connected",
		"uptime":   uptime,
	})
}
