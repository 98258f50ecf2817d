package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/pomoduo/quiz-backend/internal/config"
)

// ChatClient sends a single user prompt to a chat model and returns the text
// of its top response.
type ChatClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.ChatConfig, httpClient *http.Client) (ChatClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required for the chat strategy")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.GeminiBaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiClient{client: client, model: cfg.GeminiModel}, nil
}

func (g *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini reply:\n%s", raw)
	return raw, nil
}
