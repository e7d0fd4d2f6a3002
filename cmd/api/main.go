package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	_ "item-service/docs" // Swagger docs
)

const (
	flagConfig = "config"
)

// @title       Item Service API
// @description CRUD service for named, coloured items.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	app := &cli.App{
		Name:  "item-service",
		Usage: "HTTP service managing named, coloured items",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				EnvVars: []string{"ITEM_SERVICE_CONFIG"},
				Usage:   "configuration file to use",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
		DefaultCommand: "serve",
	}

	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
