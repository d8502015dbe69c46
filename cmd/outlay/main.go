package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"outlay/internal/cli"
	"outlay/internal/config"
	apphttp "outlay/internal/http"
	"outlay/internal/ledger"
	applog "outlay/internal/log"
)

func main() {
	cli.LoadEnvFile()

	// Bootstrap logging at info so config problems are visible, then
	// re-install at the configured level.
	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	level, _ := config.ParseLevel(cfg.LogLevel) // validated above
	logger = cli.SetupLogger(level)

	st, cleanup := cli.OpenStore(logger, cfg)
	led := ledger.Open(context.Background(), st)

	srv := apphttp.NewServer(":"+cfg.Port, led)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err.Error())
		}
		if cleanup != nil {
			if err := cleanup(); err != nil {
				logger.Error("Store close error", applog.FieldError, err.Error())
			}
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting outlay server",
			"port", cfg.Port,
			"store", cfg.StoreBackend,
			"ledger_load", led.LoadOutcome().String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err.Error(), "port", cfg.Port)
		os.Exit(1)
	}

	<-done
	logger.Info("Server stopped gracefully")
}
