package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoduo/quiz-backend/internal/quiz"
	"github.com/pomoduo/quiz-backend/internal/staticbank"
)

func staticHandler(t *testing.T) *quiz.Handler {
	t.Helper()
	bank, err := staticbank.New(staticbank.DefaultEntries())
	require.NoError(t, err)
	return quiz.NewQuizContainer("static", nil, quiz.Strategy{
		Provider: staticbank.NewProvider(bank),
		Options:  quiz.StrategyOptions{Contract: quiz.AnswerContract, RequireTopic: true},
	}).Handler
}

func TestHealthz(t *testing.T) {
	h := New(RouterConfig{QuizHandler: staticHandler(t)})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	Default(staticHandler(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	New(RouterConfig{QuizHandler: staticHandler(t)}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateQuizRoute(t *testing.T) {
	h := New(RouterConfig{QuizHandler: staticHandler(t)})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate_quiz", strings.NewReader(`{"topic": "COA"}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quiz"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generate_quiz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
