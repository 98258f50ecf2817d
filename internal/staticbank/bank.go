// Package staticbank serves quizzes from a fixed, in-process question bank.
package staticbank

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/pomoduo/quiz-backend/internal/quiz"
)

const StrategyName = "static"

// Entry is one pre-written question of the bank.
type Entry struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
}

// Bank maps topics to their questions. It is immutable once built and safe
// for concurrent use.
type Bank struct {
	topics map[string][]quiz.Question
}

// New validates entries and builds a Bank. Every entry must carry four
// options and an answer equal to one of them.
func New(entries map[string][]Entry) (*Bank, error) {
	b := &Bank{topics: make(map[string][]quiz.Question, len(entries))}
	for topic, list := range entries {
		questions := make([]quiz.Question, 0, len(list))
		for i, e := range list {
			q, err := e.toQuestion()
			if err != nil {
				return nil, fmt.Errorf("topic %q entry %d: %w", topic, i, err)
			}
			questions = append(questions, q)
		}
		b.topics[topic] = questions
	}
	return b, nil
}

func (e Entry) toQuestion() (quiz.Question, error) {
	if e.Question == "" {
		return quiz.Question{}, fmt.Errorf("question text is empty")
	}
	if len(e.Options) != quiz.OptionsPerQuestion {
		return quiz.Question{}, fmt.Errorf("expected %d options, got %d", quiz.OptionsPerQuestion, len(e.Options))
	}
	for i, opt := range e.Options {
		if opt == e.Answer {
			options := append([]string(nil), e.Options...)
			return quiz.NewQuestion(e.Question, options, i), nil
		}
	}
	return quiz.Question{}, fmt.Errorf("answer %q is not one of the options", e.Answer)
}

// Topics returns the bank's topics in sorted order.
func (b *Bank) Topics() []string {
	topics := make([]string, 0, len(b.topics))
	for t := range b.topics {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Questions returns a copy of the questions stored for topic.
func (b *Bank) Questions(topic string) []quiz.Question {
	stored := b.topics[topic]
	out := make([]quiz.Question, len(stored))
	for i, q := range stored {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

type Provider struct {
	bank    *Bank
	shuffle func(n int, swap func(i, j int))
}

func NewProvider(bank *Bank) *Provider {
	return &Provider{bank: bank, shuffle: rand.Shuffle}
}

func (p *Provider) Name() string {
	return StrategyName
}

// GenerateQuiz shuffles the topic's questions and returns at most
// quiz.MaxQuestions of them. Unknown topics yield an empty quiz.
func (p *Provider) GenerateQuiz(ctx context.Context, topic string) (qz quiz.Quiz, err error) {
	defer func() {
		if r := recover(); r != nil {
			qz = nil
			err = fmt.Errorf("static bank: %v", r)
		}
	}()

	questions := p.bank.Questions(topic)
	p.shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	if len(questions) > quiz.MaxQuestions {
		questions = questions[:quiz.MaxQuestions]
	}
	return quiz.Quiz(questions), nil
}
