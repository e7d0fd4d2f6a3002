package main

import (
	"github.com/urfave/cli/v2"

	"item-service/config"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the item schema to PostgreSQL and exit",
		Action: func(c *cli.Context) error {
			cfg, logger, err := bootstrap(c)
			if err != nil {
				return err
			}
			ctx := c.Context

			if cfg.Storage.Driver != config.StorageDriverPostgres {
				logger.Infof(ctx, "Storage driver %s has no schema, nothing to migrate", cfg.Storage.Driver)
				return nil
			}

			db, err := openPostgres(ctx, cfg.Postgres, true)
			if err != nil {
				logger.Errorf(ctx, "Migration failed: %v", err)
				return err
			}
			defer db.Close()

			logger.Info(ctx, "Schema is up to date")
			return nil
		},
	}
}
