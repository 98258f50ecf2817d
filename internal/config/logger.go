package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type ctxKey string

const quizIDKey ctxKey = "quiz_id"

var Logger = logrus.New()

func InitLogger(level string) {
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Logger.WithField("level", level).Warn("Unknown log level, falling back to info")
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)
}

func WithQuizID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, quizIDKey, id)
}

// WithContext returns a log entry tagged with the request and quiz ids found in ctx.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	if quizID, ok := ctx.Value(quizIDKey).(string); ok && quizID != "" {
		entry = entry.WithField("quiz_id", quizID)
	}
	return entry
}
