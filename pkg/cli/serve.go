package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rtcfetch/pkg/cli/config"
	controller "github.com/m-mizutani/rtcfetch/pkg/controller/http"
	"github.com/m-mizutani/rtcfetch/pkg/usecase"
	"github.com/m-mizutani/rtcfetch/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		iconCfg   config.Icon
		fetchCfg  fetchConfig
	)

	flags := append(serverCfg.Flags(), iconCfg.Flags()...)
	flags = append(flags, fetchCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server exposing connector metadata and fetch",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			if err := serverCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting rtcfetch server",
				slog.String("addr", serverCfg.Addr),
			)

			fetchUC, cleanup, err := fetchCfg.build(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			server, err := controller.NewServer(
				ctx,
				fetchUC,
				usecase.NewMetadata(iconCfg.Options()...),
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
