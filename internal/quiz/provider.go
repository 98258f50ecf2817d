package quiz

import (
	"context"
	"errors"
)

var (
	ErrTopicRequired = errors.New("topic is required")
	// ErrUpstream marks failures of an external question service.
	ErrUpstream = errors.New("question service unavailable")
)

// Contract selects the response shape a strategy is served with.
type Contract int

const (
	// AnswerContract wraps questions in {"quiz": [...]} with the answer by value.
	AnswerContract Contract = iota
	// IndexedContract returns a bare list with the answer by index.
	IndexedContract
)

// Provider produces a quiz for a topic.
type Provider interface {
	Name() string
	GenerateQuiz(ctx context.Context, topic string) (Quiz, error)
}

// StrategyOptions describes how a provider is exposed over HTTP.
type StrategyOptions struct {
	Contract Contract
	// RequireTopic rejects empty topics before the provider is called.
	RequireTopic bool
}
