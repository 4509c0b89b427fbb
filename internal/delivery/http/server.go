// Package http assembles the public API server.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"newsbite/config"
	"newsbite/internal/delivery"
	deliverymiddleware "newsbite/internal/delivery/middleware"

	httpmiddleware "newsbite/internal/delivery/http/middleware"
	"newsbite/internal/delivery/http/response"
	"newsbite/internal/delivery/http/router"
	"newsbite/internal/delivery/http/validator"
	"newsbite/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	echoServer.Use(middleware.Recover())

	requestIDMiddleware := deliverymiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))
	echoServer.Use(corsMiddleware(params.Config))
	echoServer.Use(rateLimitMiddleware(params.Config))

	applyTimeouts(echoServer, params.Config)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// corsMiddleware restricts cross-origin access to the configured origins and
// exposes the pagination headers list responses carry.
func corsMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	corsConfig := middleware.DefaultCORSConfig
	if len(cfg.HTTP.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
	}
	corsConfig.ExposeHeaders = []string{"X-Total-Count", "X-Page-Count"}

	return middleware.CORSWithConfig(corsConfig)
}

// rateLimitMiddleware caps each client IP at the configured per-minute rate
// and answers overruns with the rate-limit error shape.
func rateLimitMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	perSecond := rate.Limit(float64(cfg.RateLimit.PerMinute) / 60.0)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  perSecond,
			Burst: cfg.RateLimit.PerMinute,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMIT_ERROR", "Too many requests, please try again later", "")
		},
	})
}

func applyTimeouts(e *echo.Echo, cfg *config.Config) {
	timeouts := cfg.HTTP.Timeouts
	if timeouts.ReadTimeout > 0 {
		e.Server.ReadTimeout = timeouts.ReadTimeout
	}
	if timeouts.ReadHeaderTimeout > 0 {
		e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	}
	if timeouts.WriteTimeout > 0 {
		e.Server.WriteTimeout = timeouts.WriteTimeout
	}
	if timeouts.IdleTimeout > 0 {
		e.Server.IdleTimeout = timeouts.IdleTimeout
	}
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
