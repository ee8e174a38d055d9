package sqlite

import (
	"context"
	"log/slog"

	"shopfront/config"
	"shopfront/internal/domain/lifecycle"
	"shopfront/internal/errors"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the embedded SQLite database and registers lifecycle hooks.
// Migrations run on start, before the HTTP server begins accepting.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.SQLite.Path), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	// Child-row integrity and write concurrency both depend on these.
	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to apply %q", pragma)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	// races between GORM pool members.
	sqlDB.SetMaxOpenConns(1)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return Migrate(ctx, db, params.Config, params.Logger)
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
