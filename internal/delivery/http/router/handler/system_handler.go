// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"newsbite/config"
	"newsbite/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const dependencyPingTimeout = 2 * time.Second

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"

	dependencyStatusConnected    = "connected"
	dependencyStatusDisconnected = "disconnected"
)

// HealthStatus reports the service and its dependency states.
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// SystemHandler serves the service info and health endpoints.
type SystemHandler struct {
	cfg    *config.Config
	db     *gorm.DB
	redis  *redis.Client
	logger *slog.Logger
}

// SystemHandlerParams holds dependencies for the SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler.
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		cfg:    params.Config,
		db:     params.DB,
		redis:  params.Redis,
		logger: params.Logger,
	}
}

// Root returns the service identity.
func (h *SystemHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service":     h.cfg.Env.ServiceName,
		"version":     h.cfg.Env.Version,
		"environment": h.cfg.Env.Env,
	}, "Welcome to the NewsBite API")
}

// Health pings the database and the cache. Any failing dependency degrades
// the answer to unhealthy with a 503 so load balancers take the node out.
func (h *SystemHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dependencyPingTimeout)
	defer cancel()

	status := HealthStatus{
		Status:   healthStatusHealthy,
		Version:  h.cfg.Env.Version,
		Database: dependencyStatusConnected,
		Redis:    dependencyStatusConnected,
	}

	if err := h.pingDatabase(ctx); err != nil {
		h.logger.Warn("Health check: database unreachable", slog.Any("error", err))
		status.Database = dependencyStatusDisconnected
		status.Status = healthStatusUnhealthy
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		h.logger.Warn("Health check: redis unreachable", slog.Any("error", err))
		status.Redis = dependencyStatusDisconnected
		status.Status = healthStatusUnhealthy
	}

	if status.Status != healthStatusHealthy {
		return c.JSON(http.StatusServiceUnavailable, response.Response{
			Success:   false,
			Code:      http.StatusServiceUnavailable,
			Message:   "Service is unhealthy",
			Data:      status,
			Timestamp: time.Now().UTC(),
		})
	}

	return response.Success(c, http.StatusOK, status, "Service is healthy")
}

func (h *SystemHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
