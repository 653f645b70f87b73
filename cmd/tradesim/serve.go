package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/engine"
	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/handler"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and tick the market in the background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve()
		},
	}
}

func (a *app) serve() error {
	router := handler.NewRouter(a.marketSvc, a.accountSvc, a.logger)

	// Start the market ticker with a cancellable context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ticker := engine.NewMarketTicker(a.cfg.TickInterval, a.engine, a.store, a.logger)
	ticker.Start(ctx)

	addr := fmt.Sprintf(":%d", a.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("data_file", a.cfg.DataFile),
			slog.Duration("tick_interval", a.cfg.TickInterval),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for SIGINT/SIGTERM or a listener failure.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		a.logger.Error("server error", slog.String("error", err.Error()))
		runErr = err
	}

	// Graceful shutdown: stop HTTP server, stop the ticker, save once more.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	cancel()

	if err := a.store.Save(shutdownCtx, a.engine.Snapshot()); err != nil {
		a.logger.Error("final snapshot save failed", slog.String("error", err.Error()))
	}

	a.logger.Info("server stopped", slog.Int64("ticks", ticker.TickCount()))
	return runErr
}

func healthcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Check a running server's /healthz endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("healthz returned %d", resp.StatusCode)
			}
			return nil
		},
	}
}
