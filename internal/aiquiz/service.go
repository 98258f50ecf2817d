// Package aiquiz builds quizzes from a generative chat model's free-text reply.
package aiquiz

import (
	"context"
	"fmt"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/quiz"
)

const StrategyName = "chat"

type Provider struct {
	chat ChatClient
}

func NewProvider(chat ChatClient) *Provider {
	return &Provider{chat: chat}
}

func (p *Provider) Name() string {
	return StrategyName
}

// GenerateQuiz prompts the chat model and parses its reply. A reply that
// yields no complete question gives an empty quiz; transport failures are
// reported as quiz.ErrUpstream.
func (p *Provider) GenerateQuiz(ctx context.Context, topic string) (quiz.Quiz, error) {
	log := config.WithContext(ctx)

	content, err := p.chat.Complete(ctx, BuildPrompt(topic))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", quiz.ErrUpstream, err)
	}

	questions := ParseQuestions(content)
	if len(questions) == 0 {
		log.WithField("reply_length", len(content)).Warn("[AIQUIZ] Reply contained no complete question")
		return quiz.Quiz{}, nil
	}
	if len(questions) < quiz.MaxQuestions {
		log.Infof("[AIQUIZ] Parsed %d of %d requested questions", len(questions), quiz.MaxQuestions)
	}
	return questions, nil
}
