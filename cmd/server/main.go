package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/container"
	"github.com/pomoduo/quiz-backend/internal/metrics"
	"github.com/pomoduo/quiz-backend/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load config")
	}
	config.InitLogger(cfg.Server.LogLevel)

	c, err := container.New(ctx, cfg, metrics.NewProm(cfg.MetricsNamespace, nil))
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.Default(c.QuizContainer.Handler),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		config.Logger.WithField("addr", srv.Addr).Info("Quiz server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server error")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
}
