package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "path to a .env file",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Usage:   "directory holding config.yml and the lock file",
			Sources: cli.EnvVars("NAUKARIWALA_DATA_DIR"),
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "config file (default <data-dir>/config.yml)",
		},
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "naukariwala",
		Usage: "NaukariWala job site server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the web server",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "listen address, overrides app.addr",
					},
					&cli.StringFlag{
						Name:    "shutdown-token",
						Usage:   "enable POST /shutdown from localhost with this X-Shutdown-Token",
						Sources: cli.EnvVars("NAUKARIWALA_SHUTDOWN_TOKEN"),
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "do not print the banner",
					},
				),
				Action: serveAction,
			},
			{
				Name:  "jobs",
				Usage: "list jobs from the catalog",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "all, remote, full-time, part-time or contract",
						Value:   "all",
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "search title, company and tags",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print JSON instead of a table",
					},
				),
				Action: jobsAction,
			},
			{
				Name:   "privacy",
				Usage:  "print the privacy policy",
				Action: privacyAction,
			},
			{
				Name:  "config",
				Usage: "manage the config file",
				Commands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "write the default config into the data dir",
						Flags:  commonFlags(),
						Action: configInitAction,
					},
					{
						Name:   "validate",
						Usage:  "check the config file",
						Flags:  commonFlags(),
						Action: configValidateAction,
					},
				},
			},
		},
	}
}
