package handler

import (
	"context"
	"net/http"
	"time"

	"projtrack/internal/dto"
	"projtrack/internal/repository"
	"projtrack/pkg/lookupcache"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler reports whether the database and cache answer.
type HealthHandler struct {
	uow    *repository.UnitOfWork
	cache  *lookupcache.Cache
	logger *logrus.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(uow *repository.UnitOfWork, cache *lookupcache.Cache, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{uow: uow, cache: cache, logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := h.uow.Ping(ctx); err != nil {
		h.logger.WithError(err).Error("database ping failed")
		resp.Status = "degraded"
		resp.Database = "unavailable"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			// the cache is optional, requests fall back to the database
			h.logger.WithError(err).Warn("cache ping failed")
			resp.Cache = "unavailable"
		}
	}

	c.JSON(status, resp)
}
