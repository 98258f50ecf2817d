package container

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomoduo/quiz-backend/internal/config"
	"github.com/pomoduo/quiz-backend/internal/metrics"
)

func loadConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(context.Background(), envconfig.MapLookuper(env))
	require.NoError(t, err)
	return cfg
}

func TestNewDefaultsToStaticBank(t *testing.T) {
	c, err := New(context.Background(), loadConfig(t, nil), metrics.Noop{})
	require.NoError(t, err)
	require.NotNil(t, c.QuizContainer.Handler)
	assert.Equal(t, "static", c.Config.DefaultStrategy())
}

func TestNewWithGenerator(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"QUIZ_STRATEGY":      "Generator",
		"ENABLED_STRATEGIES": "static",
		"QGEN_URL":           "http://qgen.invalid/models/t5",
	})
	c, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"generator", "static"}, c.Config.EnabledStrategies())
}

func TestNewUnknownStrategy(t *testing.T) {
	cfg := loadConfig(t, map[string]string{"ENABLED_STRATEGIES": "static,trivia"})

	_, err := New(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNewChatRequiresKey(t *testing.T) {
	cfg := loadConfig(t, map[string]string{"QUIZ_STRATEGY": "chat"})

	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewMissingBankFile(t *testing.T) {
	cfg := loadConfig(t, map[string]string{"BANK_FILE": "/nonexistent/bank.yaml"})

	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}
