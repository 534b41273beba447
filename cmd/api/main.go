// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"alphawell/internal/app"
	"alphawell/internal/config"
	"alphawell/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	log := logger.Must(logger.New(cfg.LogFormat, cfg.LogLevel))
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, app.Options{}) // <-- inisialisasi + inject semua repos
	if err != nil {
		log.Fatal("init app", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("close app", zap.Error(err))
		}
	}()

	if err := a.Scheduler.Start(); err != nil {
		log.Fatal("start scheduler", zap.Error(err))
	}
	defer a.Scheduler.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      a.Handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // stream SSE + remote analysis
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("API running",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.String("version", config.BuildVersion),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
}
