package quiz

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/metrics"
)

type Service interface {
	Name() string
	Options() StrategyOptions
	GenerateQuiz(ctx context.Context, topic string) (Quiz, error)
}

type service struct {
	provider Provider
	opts     StrategyOptions
	metrics  metrics.Recorder
}

func NewService(provider Provider, opts StrategyOptions, recorder metrics.Recorder) Service {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &service{provider: provider, opts: opts, metrics: recorder}
}

func (s *service) Name() string {
	return s.provider.Name()
}

func (s *service) Options() StrategyOptions {
	return s.opts
}

func (s *service) GenerateQuiz(ctx context.Context, topic string) (Quiz, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"strategy": s.provider.Name(),
		"topic":    topic,
	})

	if s.opts.RequireTopic && strings.TrimSpace(topic) == "" {
		log.Warn("Quiz requested without topic")
		s.metrics.ObserveQuiz(s.provider.Name(), metrics.OutcomeRejected, 0, 0)
		return nil, ErrTopicRequired
	}

	start := time.Now()
	qz, err := s.provider.GenerateQuiz(ctx, topic)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		outcome := metrics.OutcomeInternal
		if errors.Is(err, ErrUpstream) {
			outcome = metrics.OutcomeUpstream
		}
		log.WithError(err).Errorf("Failed to generate quiz")
		s.metrics.ObserveQuiz(s.provider.Name(), outcome, 0, elapsed)
		return qz, err
	}

	qz = sanitize(log, qz)
	outcome := metrics.OutcomeOK
	if len(qz) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	s.metrics.ObserveQuiz(s.provider.Name(), outcome, len(qz), elapsed)
	log.WithField("questions", len(qz)).Info("Quiz generated")
	return qz, nil
}

// sanitize drops questions whose answer does not reference an option and
// caps the quiz at MaxQuestions.
func sanitize(log logrus.FieldLogger, qz Quiz) Quiz {
	out := make(Quiz, 0, len(qz))
	for _, q := range qz {
		if !q.Valid() {
			log.WithField("question", q.Text).Warn("Dropping question with answer outside its options")
			continue
		}
		out = append(out, q)
		if len(out) == MaxQuestions {
			break
		}
	}
	return out
}
