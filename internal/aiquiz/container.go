package aiquiz

import (
	"context"
	"net/http"

	"github.com/pomoduo/quiz-backend/internal/config"
)

type AIQuizContainer struct {
	Provider *Provider
}

func NewAIQuizContainer(ctx context.Context, cfg config.ChatConfig, httpClient *http.Client) (*AIQuizContainer, error) {
	chat, err := NewGeminiClient(ctx, cfg, httpClient)
	if err != nil {
		return nil, err
	}

	return &AIQuizContainer{
		Provider: NewProvider(chat),
	}, nil
}
