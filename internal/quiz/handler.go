package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pomoduo/quiz-backend/internal/config"
)

const (
	topicRequiredMessage   = "Topic is required"
	upstreamErrorMessage   = "failed to generate quiz"
	unknownStrategyMessage = "unknown strategy"
	sentinelQuestionText   = "Error generating question"
	quizIDHeader           = "X-Quiz-Id"
	strategyURLParam       = "strategy"
)

type Handler struct {
	services        map[string]Service
	defaultStrategy string
}

func NewHandler(defaultStrategy string, services ...Service) *Handler {
	h := &Handler{services: make(map[string]Service, len(services)), defaultStrategy: defaultStrategy}
	for _, s := range services {
		h.services[s.Name()] = s
	}
	return h
}

// SentinelQuiz is the degraded response of the indexed contract.
func SentinelQuiz() Quiz {
	return Quiz{{Text: sentinelQuestionText, Options: []string{}, CorrectIndex: -1}}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.defaultStrategy)
}

func (h *Handler) GenerateQuizWithStrategy(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, chi.URLParam(r, strategyURLParam))
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, strategy string) {
	quizID := uuid.NewString()
	ctx := config.WithQuizID(r.Context(), quizID)
	log := config.WithContext(ctx)
	w.Header().Set(quizIDHeader, quizID)

	svc, ok := h.services[strategy]
	if !ok {
		log.WithField("strategy", strategy).Warn("Quiz requested for unknown strategy")
		config.JSON(w, http.StatusNotFound, ErrorResponse{Error: unknownStrategyMessage})
		return
	}

	var req GenerateRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.WithError(err).Warn("Invalid request body for quiz generation")
			req = GenerateRequest{}
		}
	}

	qz, err := svc.GenerateQuiz(ctx, req.Topic)

	if svc.Options().Contract == IndexedContract {
		if err != nil || len(qz) == 0 {
			qz = SentinelQuiz()
		}
		config.JSON(w, http.StatusOK, toIndexedQuestions(qz))
		return
	}

	switch {
	case err == nil:
		config.JSON(w, http.StatusOK, AnswerResponse{Quiz: toAnswerQuestions(qz)})
	case errors.Is(err, ErrTopicRequired):
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: topicRequiredMessage})
	case errors.Is(err, ErrUpstream):
		config.JSON(w, http.StatusInternalServerError, AnswerResponse{Quiz: []AnswerQuestion{}, Error: upstreamErrorMessage})
	default:
		config.JSON(w, http.StatusInternalServerError, AnswerResponse{Quiz: []AnswerQuestion{}, Error: err.Error()})
	}
}
