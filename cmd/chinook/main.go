package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/chinook-backend/internal/app"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
)

func main() {
	cmd := &cli.Command{
		Name:    "chinook",
		Usage:   "REST API for the Chinook digital media store",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to load before reading configuration",
				Value: []string{".env"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chinook: %v\n", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port (overrides PORT)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			log, cfg, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer log.Sync()
			if p := c.String("port"); p != "" {
				cfg.Port = p
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return a.Run(gctx)
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info("Shutdown requested")
				return nil
			})
			return g.Wait()
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema",
		Action: func(ctx context.Context, c *cli.Command) error {
			log, cfg, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer log.Sync()
			if err := app.Migrate(cfg, log); err != nil {
				return err
			}
			log.Info("Migration complete", "driver", cfg.DB.Driver)
			return nil
		},
	}
}

func bootstrap(c *cli.Command) (*logger.Logger, app.Config, error) {
	if err := app.LoadDotEnv(c.StringSlice("env-file")...); err != nil {
		return nil, app.Config{}, fmt.Errorf("load env file: %w", err)
	}
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, app.Config{}, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Loading environment variables...")
	return log, app.LoadConfig(log), nil
}
