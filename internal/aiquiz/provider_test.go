package aiquiz

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/quiz"
)

const testModel = "gemini-test"

func newGeminiServer(t *testing.T, status int, body interface{}) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func newTestGemini(t *testing.T, srv *httptest.Server) ChatClient {
	t.Helper()
	client, err := NewGeminiClient(context.Background(), config.ChatConfig{
		GeminiAPIKey:  "test-key",
		GeminiModel:   testModel,
		GeminiBaseURL: srv.URL,
	}, srv.Client())
	require.NoError(t, err)
	return client
}

func candidateReply(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{{
			"content": map[string]interface{}{
				"role":  "model",
				"parts": []map[string]interface{}{{"text": text}},
			},
			"finishReason": "STOP",
		}},
	}
}

func TestGeminiCompleteReturnsCandidateText(t *testing.T) {
	srv, paths := newGeminiServer(t, http.StatusOK, candidateReply(numberedReply))
	client := newTestGemini(t, srv)

	text, err := client.Complete(context.Background(), BuildPrompt("Go"))
	require.NoError(t, err)
	assert.Equal(t, numberedReply, text)

	require.Len(t, *paths, 1)
	assert.True(t, strings.HasSuffix((*paths)[0], "models/"+testModel+":generateContent"), (*paths)[0])

	qz, err := NewProvider(client).GenerateQuiz(context.Background(), "Go")
	require.NoError(t, err)
	assert.Len(t, qz, 5)
}

func TestGeminiCompleteNoCandidates(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK, map[string]interface{}{"candidates": []interface{}{}})
	client := newTestGemini(t, srv)

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)

	qz, err := NewProvider(client).GenerateQuiz(context.Background(), "Go")
	assert.ErrorIs(t, err, quiz.ErrUpstream)
	assert.Nil(t, qz)
}

func TestGeminiCompleteErrorStatus(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusBadRequest, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    400,
			"message": "API key not valid",
			"status":  "INVALID_ARGUMENT",
		},
	})
	client := newTestGemini(t, srv)

	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)

	_, err = NewProvider(client).GenerateQuiz(context.Background(), "Go")
	assert.ErrorIs(t, err, quiz.ErrUpstream)
}
