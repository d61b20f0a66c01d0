package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/bindkit/app/basic"
	"github.com/dmitrymomot/bindkit/core/config"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo HTTP server",
		Long: `Serve starts the demo application. Settings come from the environment
(APP_*, LOG_*, SERVER_*) and an optional .env file.

Example:
  basic serve --addr :9090
  LOG_LEVEL=trace basic serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SERVER_ADDR")

	return cmd
}

func runServe(ctx context.Context, addr string) error {
	var cfg basic.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	app, err := basic.NewApp(basic.WithConfig(cfg))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.Run(ctx))
	return g.Wait()
}
