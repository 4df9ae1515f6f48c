// Package sqlite contains the concrete implementation of the persistence layer using GORM and sqlite.
package sqlite

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"biudzetas/config"
	"biudzetas/internal/domain/lifecycle"
	"biudzetas/internal/errors"
	"biudzetas/internal/infra/persistence/model"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the sqlite database file and migrates the schema.
func New(params Params) (*gorm.DB, error) {
	path := params.Config.Database.Path
	if path == "" {
		path = "biudzetas.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// TranslateError turns driver constraint failures into
		// gorm.ErrDuplicatedKey and friends, which the repositories map to
		// domain errors.
		TranslateError: true,
		Logger:         newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	if err := db.AutoMigrate(&model.AccountModel{}, &model.EntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping sqlite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
