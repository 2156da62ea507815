// server/internal/api/handlers/diagnostics_handler.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"booking-management-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

// Pinger issues a no-op liveness command against the store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type DiagnosticsHandler struct {
	Store   Pinger
	Timeout time.Duration
}

func (h *DiagnosticsHandler) ping(c *gin.Context) error {
	ctx := c.Request.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}
	return h.Store.Ping(ctx)
}

// Ping reports store connectivity in the body only: the status is 200 either way.
func (h *DiagnosticsHandler) Ping(c *gin.Context) {
	if err := h.ping(c); err != nil {
		log.Printf("store ping failed: %v", err)
		c.JSON(http.StatusOK, models.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.OKMessage("Connected to MongoDB!"))
}

// Health is the probe for load balancers and orchestrators; it answers 503 when
// the store is unreachable.
func (h *DiagnosticsHandler) Health(c *gin.Context) {
	checks := gin.H{"database": "up"}
	if err := h.ping(c); err != nil {
		checks["database"] = "down"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
}
