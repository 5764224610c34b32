package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"pricewatch/internal/api"
	"pricewatch/internal/api/handler/v1handler"
	"pricewatch/internal/config"
	"pricewatch/internal/monitor"
	"pricewatch/internal/worker"
	"pricewatch/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server, the scheduler and the batch workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			fetcher, closeFetcher := getFetcher(ctx, cfg)
			defer closeFetcher()

			mon := monitor.New(strg, fetcher, getNotifier(ctx, cfg), monitor.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, mon, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start worker", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:        v1handler.Deps{Monitor: mon},
				RiverClient: riverClient,
				Health:      strg.Ping,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping worker...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop worker", zap.Error(err))
			}
		},
	}

	return cmd
}
