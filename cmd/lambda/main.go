package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/container"
	"github.com/pomoduo/quiz-backend/internal/metrics"
	"github.com/pomoduo/quiz-backend/internal/router"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load config")
	}
	config.InitLogger(cfg.Server.LogLevel)

	c, err := container.New(ctx, cfg, metrics.NewProm(cfg.MetricsNamespace, nil))
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}

	adapter := httpadapter.New(router.Default(c.QuizContainer.Handler))
	lambda.Start(adapter.ProxyWithContext)
}
