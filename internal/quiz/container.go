package quiz

import "github.com/pomoduo/quiz-backend/internal/metrics"

// Strategy pairs a provider with the way it is exposed.
type Strategy struct {
	Provider Provider
	Options  StrategyOptions
}

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(defaultStrategy string, recorder metrics.Recorder, strategies ...Strategy) *QuizContainer {
	services := make([]Service, 0, len(strategies))
	for _, s := range strategies {
		services = append(services, NewService(s.Provider, s.Options, recorder))
	}

	return &QuizContainer{
		Handler: NewHandler(defaultStrategy, services...),
	}
}
