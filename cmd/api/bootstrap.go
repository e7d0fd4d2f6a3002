package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"item-service/config"
	"item-service/internal/item/repository"
	"item-service/internal/item/repository/memory"
	"item-service/internal/item/repository/postgre"
	"item-service/pkg/log"
	"item-service/pkg/postgres"
)

const sentryFlushTimeout = 2 * time.Second

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap(c *cli.Context) (*config.Config, log.Logger, error) {
	cfg, err := config.Load(c.String(flagConfig))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	return cfg, logger, nil
}

// initSentry enables error reporting when a DSN is configured. The returned
// func flushes buffered events.
func initSentry(ctx context.Context, cfg config.SentryConfig, l log.Logger) func() {
	if cfg.DSN == "" {
		l.Info(ctx, "Sentry disabled: no DSN configured")
		return func() {}
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
	}); err != nil {
		l.Warnf(ctx, "Sentry not available: %v", err)
		return func() {}
	}

	l.Infof(ctx, "Sentry enabled for environment %s", cfg.Environment)
	return func() { sentry.Flush(sentryFlushTimeout) }
}

// openPostgres connects and, when requested, applies the schema.
func openPostgres(ctx context.Context, cfg config.PostgresConfig, migrate bool) (*sql.DB, error) {
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

// openItemRepository returns the repository for the configured storage driver
// and a func releasing its resources.
func openItemRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		l.Warn(ctx, "Using in-memory storage: items are lost on restart")
		return memory.New(), func() {}, nil

	case config.StorageDriverPostgres:
		db, err := openPostgres(ctx, cfg.Postgres, cfg.Postgres.AutoMigrate)
		if err != nil {
			return nil, nil, err
		}
		l.Info(ctx, "Connected to PostgreSQL")
		return postgre.New(db, l), func() { db.Close() }, nil

	default:
		return nil, nil, errors.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
