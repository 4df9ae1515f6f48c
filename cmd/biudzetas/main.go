package main

import (
	"context"
	"log/slog"
	"os"

	"biudzetas/config"
	"biudzetas/internal/delivery"
	"biudzetas/internal/delivery/http"
	"biudzetas/internal/delivery/http/middleware"
	"biudzetas/internal/delivery/http/router/handler"
	"biudzetas/internal/domain/repository"
	"biudzetas/internal/infra/auth"
	logs "biudzetas/internal/infra/log"
	"biudzetas/internal/infra/mail"
	"biudzetas/internal/infra/persistence/sqlite"
	"biudzetas/internal/usecase"
	"biudzetas/internal/usecase/impl"

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
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewAccountRepository,
			sqlite.NewEntryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenService,
			auth.NewResetTokenService,
			mail.NewMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewRecoveryService,
			newEntryService,
		),
	)
}

// newEntryService feeds the configured page size into the entry service.
func newEntryService(entries repository.EntryRepository, cfg *config.Config, logger *slog.Logger) usecase.EntryUsecase {
	return impl.NewEntryService(entries, cfg.Entries.PageSize, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewRecoveryHandler,
			handler.NewEntryHandler,
			handler.NewAdminHandler,
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
