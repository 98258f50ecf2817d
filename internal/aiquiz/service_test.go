package aiquiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/quiz"
)

type fakeChat struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeChat) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t,
		"Generate 5 multiple-choice questions about Operating Systems, each with 4 options and the correct answer.",
		BuildPrompt("Operating Systems"),
	)
}

func TestProviderGenerateQuiz(t *testing.T) {
	chat := &fakeChat{reply: numberedReply}
	p := NewProvider(chat)

	qz, err := p.GenerateQuiz(context.Background(), "Go")
	require.NoError(t, err)
	assert.Len(t, qz, 5)
	require.Len(t, chat.prompts, 1)
	assert.Equal(t, BuildPrompt("Go"), chat.prompts[0])
	assert.Equal(t, StrategyName, p.Name())
}

func TestProviderUnparseableReply(t *testing.T) {
	p := NewProvider(&fakeChat{reply: "no questions today"})

	qz, err := p.GenerateQuiz(context.Background(), "Go")
	require.NoError(t, err)
	assert.NotNil(t, qz)
	assert.Empty(t, qz)
}

func TestProviderUpstreamFailure(t *testing.T) {
	p := NewProvider(&fakeChat{err: errors.New("connection refused")})

	qz, err := p.GenerateQuiz(context.Background(), "Go")
	assert.ErrorIs(t, err, quiz.ErrUpstream)
	assert.Nil(t, qz)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), config.ChatConfig{GeminiModel: "gemini-2.0-flash"}, nil)
	assert.Error(t, err)
}
