// Package worker assembles the digest worker's push endpoint server.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"newsbite/config"
	"newsbite/internal/delivery"
	"newsbite/internal/delivery/middleware"
	"newsbite/internal/delivery/worker/handler"
	"newsbite/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBodyLimit caps the accepted push payload. Pub/Sub messages top out at
// 10MB; anything larger is not one of ours.
const pushBodyLimit = "10M"

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer wires the digest worker's echo server: a health probe and the
// Pub/Sub push endpoint, behind recovery, request-id and logging middleware.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Recover first so a panicking handler still answers the push.
	e.Use(echomiddleware.Recover())

	// Request ID before logging so the ID shows up in every log line.
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.Use(echomiddleware.BodyLimit(pushBodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": params.Cfg.Env.ServiceName + "-digestworker",
		})
	})

	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the digest worker server and blocks until it stops.
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting digest worker server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down digest worker server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
