package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/postfeed-server/internal/logger"
	"github.com/dtroode/postfeed-server/internal/model"
)

const readinessTimeout = 2 * time.Second

// Health serves the liveness and readiness probes.
type Health struct {
	db     model.Pinger
	logger *logger.Logger
}

func NewHealth(db model.Pinger, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

// Liveness does not depend on storage.
func (h *Health) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// Readiness reports 503 while the database is unreachable.
func (h *Health) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("Health handler: db ping failed",
			"error", err.Error())
		c.JSON(http.StatusServiceUnavailable, errorResponse{Detail: "database unavailable"})
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "ready"})
}
