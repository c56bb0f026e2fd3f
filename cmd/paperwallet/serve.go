package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/tos-paper-wallet/internal/api"
	"github.com/AlexZinkM/tos-paper-wallet/internal/app"
	"github.com/AlexZinkM/tos-paper-wallet/internal/config"
	"github.com/AlexZinkM/tos-paper-wallet/internal/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the wallet page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.IsProduction())
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			go func() {
				if err := a.Ready(ctx); err != nil {
					log.Error("crypto module failed to load, wallet generation disabled", zap.Error(err))
					return
				}
				log.Info("modules ready")
			}()

			return serve(ctx, log, &http.Server{
				Addr:              cfg.Addr(),
				Handler:           api.SetupRouter(a),
				ReadHeaderTimeout: 10 * time.Second,
			})
		},
	}
}

func serve(ctx context.Context, log *zap.Logger, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
