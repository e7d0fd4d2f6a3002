package main

import (
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"item-service/internal/httpserver"
	"item-service/internal/middleware"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Action: func(c *cli.Context) error {
			cfg, logger, err := bootstrap(c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info(ctx, "Starting item service...")
			logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
			logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

			flush := initSentry(ctx, cfg.Sentry, logger)
			defer flush()

			repo, closeRepo, err := openItemRepository(ctx, cfg, logger)
			if err != nil {
				logger.Errorf(ctx, "Failed to open item storage: %v", err)
				return errors.WithStack(err)
			}
			defer closeRepo()

			httpServer, err := httpserver.New(logger, httpserver.Config{
				Logger:          logger,
				Port:            cfg.HTTPServer.Port,
				Mode:            cfg.HTTPServer.Mode,
				Environment:     cfg.Environment.Name,
				ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
				CORSOrigins:     cfg.CORS.AllowedOrigins,
				MetricsEnabled:  cfg.Metrics.Enabled,
				Middleware: middleware.Config{
					RequestTimeout:   cfg.HTTPServer.RequestTimeout,
					RateLimitEnabled: cfg.RateLimit.Enabled,
					RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
				},
				ItemRepo: repo,
			})
			if err != nil {
				logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
				return err
			}

			if err := httpServer.Run(ctx); err != nil {
				logger.Errorf(ctx, "Failed to run server: %v", err)
				return err
			}

			logger.Info(ctx, "Server stopped gracefully")
			return nil
		},
	}
}
