package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pomoduo/quiz-backend/internal/aiquiz"
	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/httpclient"
	"github.com/pomoduo/quiz-backend/internal/metrics"
	"github.com/pomoduo/quiz-backend/internal/qgen"
	"github.com/pomoduo/quiz-backend/internal/quiz"
	"github.com/pomoduo/quiz-backend/internal/staticbank"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type Container struct {
	Config        *config.Config
	QuizContainer *quiz.QuizContainer
}

// New builds every enabled strategy. The question bank is loaded once here
// and shared read-only by all requests.
func New(ctx context.Context, cfg *config.Config, recorder metrics.Recorder) (*Container, error) {
	log := config.WithContext(ctx)

	var strategies []quiz.Strategy
	for _, name := range cfg.EnabledStrategies() {
		strategy, err := buildStrategy(ctx, cfg, name)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", name, err)
		}
		strategies = append(strategies, strategy)
		log.WithField("strategy", name).Info("Quiz strategy enabled")
	}

	return &Container{
		Config:        cfg,
		QuizContainer: quiz.NewQuizContainer(cfg.DefaultStrategy(), recorder, strategies...),
	}, nil
}

func buildStrategy(ctx context.Context, cfg *config.Config, name string) (quiz.Strategy, error) {
	switch name {
	case staticbank.StrategyName:
		bank, err := staticbank.Load(ctx, cfg.Bank)
		if err != nil {
			return quiz.Strategy{}, err
		}
		return quiz.Strategy{
			Provider: staticbank.NewProvider(bank),
			Options:  quiz.StrategyOptions{Contract: quiz.AnswerContract, RequireTopic: true},
		}, nil

	case aiquiz.StrategyName:
		c, err := aiquiz.NewAIQuizContainer(ctx, cfg.Chat, outboundClient(cfg, ""))
		if err != nil {
			return quiz.Strategy{}, err
		}
		return quiz.Strategy{
			Provider: c.Provider,
			Options:  quiz.StrategyOptions{Contract: quiz.AnswerContract, RequireTopic: true},
		}, nil

	case qgen.StrategyName:
		p, err := qgen.NewProvider(cfg.Generator, outboundClient(cfg, cfg.Generator.APIToken))
		if err != nil {
			return quiz.Strategy{}, err
		}
		return quiz.Strategy{
			Provider: p,
			Options:  quiz.StrategyOptions{Contract: quiz.IndexedContract, RequireTopic: false},
		}, nil
	}

	return quiz.Strategy{}, ErrUnknownStrategy
}

func outboundClient(cfg *config.Config, bearerToken string) *http.Client {
	return httpclient.New(httpclient.Options{
		Timeout:     cfg.HTTP.Timeout,
		RetryMax:    cfg.HTTP.RetryMax,
		BearerToken: bearerToken,
	})
}
