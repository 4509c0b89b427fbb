package main

import (
	"context"
	"log/slog"
	"os"

	"newsbite/config"
	"newsbite/internal/delivery"
	"newsbite/internal/delivery/http"
	"newsbite/internal/delivery/http/middleware"
	"newsbite/internal/delivery/http/router/handler"
	"newsbite/internal/infra/auth"
	"newsbite/internal/infra/auth/google"
	"newsbite/internal/infra/cache"
	logs "newsbite/internal/infra/log"
	"newsbite/internal/infra/persistence/postgres"
	"newsbite/internal/infra/pubsub"
	"newsbite/internal/infra/storage"
	"newsbite/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewNewsRepository,
			postgres.NewEmailRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewJWTService,
			google.NewAuthService,
			storage.NewObjectStorage,
			cache.NewArticleCache,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewNewsService,
			impl.NewEmailService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSystemHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewNewsHandler,
			handler.NewEmailHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
