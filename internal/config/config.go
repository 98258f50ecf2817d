// Package config loads environment configuration and provides the shared
// logger and JSON response helpers.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type ServerConfig struct {
	Port     string `env:"PORT, default=5000"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

type StrategyConfig struct {
	// Default strategy served on POST /generate_quiz.
	Default string `env:"QUIZ_STRATEGY, default=static"`
	// Comma separated list of strategies reachable under /strategies/{name}.
	Enabled string `env:"ENABLED_STRATEGIES, default=static"`
}

type BankConfig struct {
	File        string `env:"BANK_FILE"`
	DatabaseDSN string `env:"BANK_DATABASE_DSN"`
}

type ChatConfig struct {
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL, default=gemini-2.0-flash"`
	// GeminiBaseURL overrides the Gemini API endpoint, e.g. for a proxy.
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`
}

type GeneratorConfig struct {
	URL      string `env:"QGEN_URL, default=https://api-inference.huggingface.co/models/mrm8488/t5-base-finetuned-question-generation-ap"`
	APIToken string `env:"QGEN_API_TOKEN"`
}

type HTTPClientConfig struct {
	Timeout  time.Duration `env:"HTTP_TIMEOUT, default=30s"`
	RetryMax int           `env:"HTTP_RETRY_MAX, default=1"`
}

type Config struct {
	Server    ServerConfig
	Strategy  StrategyConfig
	Bank      BankConfig
	Chat      ChatConfig
	Generator GeneratorConfig
	HTTP      HTTPClientConfig

	MetricsNamespace string `env:"METRICS_NAMESPACE, default=quiz"`
	SecretKey        string `env:"SECRET_KEY"`
}

// Load reads an optional .env file, then the process environment.
// Credentials prefixed with "enc:" are decrypted with SECRET_KEY.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	var box *SecretBox
	if cfg.SecretKey != "" {
		b, err := NewSecretBox(cfg.SecretKey)
		if err != nil {
			return nil, err
		}
		box = b
	}

	var err error
	if cfg.Chat.GeminiAPIKey, err = resolveSecret(box, "GEMINI_API_KEY", cfg.Chat.GeminiAPIKey); err != nil {
		return nil, err
	}
	if cfg.Generator.APIToken, err = resolveSecret(box, "QGEN_API_TOKEN", cfg.Generator.APIToken); err != nil {
		return nil, err
	}
	if cfg.Bank.DatabaseDSN, err = resolveSecret(box, "BANK_DATABASE_DSN", cfg.Bank.DatabaseDSN); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) DefaultStrategy() string {
	return strings.ToLower(strings.TrimSpace(c.Strategy.Default))
}

// EnabledStrategies returns the enabled strategy names, always including the default.
func (c *Config) EnabledStrategies() []string {
	seen := map[string]bool{}
	var out []string
	add := func(name string) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	add(c.DefaultStrategy())
	for _, name := range strings.Split(c.Strategy.Enabled, ",") {
		add(name)
	}
	return out
}
