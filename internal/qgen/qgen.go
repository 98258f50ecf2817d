// Package qgen wraps a hosted question-generation model that turns an
// "answer + context" input into a single question.
package qgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/quiz"
)

const StrategyName = "generator"

var placeholderOptions = []string{"A", "B", "C", "D"}

type Provider struct {
	client *resty.Client
	url    string
}

func NewProvider(cfg config.GeneratorConfig, httpClient *http.Client) (*Provider, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("QGEN_URL is required for the generator strategy")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := resty.NewWithClient(httpClient).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetHeader("Accept", "application/json")

	return &Provider{client: client, url: cfg.URL}, nil
}

func (p *Provider) Name() string {
	return StrategyName
}

// BuildInput renders the pseudo answer and context the model expects.
func BuildInput(topic string) string {
	return fmt.Sprintf(
		"answer: %s  context: %s is a key concept in computer science that students should understand.",
		topic, topic,
	)
}

// GenerateQuiz wraps the generated question into a one-question quiz with
// placeholder options and the first option marked correct.
func (p *Provider) GenerateQuiz(ctx context.Context, topic string) (quiz.Quiz, error) {
	log := config.WithContext(ctx)

	var out []generatedText
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(generateRequest{Inputs: BuildInput(topic)}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(p.url)
	if err != nil {
		log.WithError(err).Error("generate-question request failed")
		return nil, fmt.Errorf("%w: generate question: %v", quiz.ErrUpstream, err)
	}
	if resp.IsError() {
		log.WithField("status", resp.StatusCode()).WithField("body", resp.String()).Error("generate-question non-2xx")
		return nil, fmt.Errorf("%w: generate-question status %d", quiz.ErrUpstream, resp.StatusCode())
	}

	text := ""
	if len(out) > 0 {
		text = cleanQuestion(out[0].GeneratedText)
	}
	if text == "" {
		log.Warn("generate-question returned no text")
		return nil, fmt.Errorf("%w: generate-question returned no text", quiz.ErrUpstream)
	}

	options := append([]string(nil), placeholderOptions...)
	return quiz.Quiz{quiz.NewQuestion(text, options, 0)}, nil
}

func cleanQuestion(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= len("question:") && strings.EqualFold(s[:len("question:")], "question:") {
		s = s[len("question:"):]
	}
	return strings.TrimSpace(s)
}
