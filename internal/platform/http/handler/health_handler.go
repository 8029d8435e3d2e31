// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ohlc_backend/internal/api"
)

// pingTimeout bounds the catalogue database check.
const pingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves /healthz.
type HealthHandler struct {
	provider string
	db       Pinger
}

// NewHealthHandler creates a HealthHandler. db may be nil when no catalogue
// database is wired; the check is then skipped.
func NewHealthHandler(provider string, db Pinger) *HealthHandler {
	return &HealthHandler{provider: provider, db: db}
}

// Health answers GET/HEAD/OPTIONS on /healthz and prevents caching.
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			slog.Warn("health check: catalogue database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, api.HealthResponse{Status: "degraded", Provider: h.provider})
			return
		}
	}
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Provider: h.provider})
}
