package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/metrics"
	"github.com/pomoduo/quiz-backend/internal/quiz"
)

type RouterConfig struct {
	QuizHandler *quiz.Handler
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Mount("/", quiz.Routes(cfg.QuizHandler))
	return r
}

// Default wires the router with the Prometheus handler.
func Default(h *quiz.Handler) http.Handler {
	return New(RouterConfig{QuizHandler: h, MetricsHandler: metrics.Handler()})
}
