// Package httpclient builds the outbound HTTP client shared by the remote
// question services.
package httpclient

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/pomoduo/quiz-backend/internal/config"
)

type Options struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// BearerToken, when set, is sent as "Authorization: Bearer <token>".
	BearerToken string
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.RetryMax < 0 {
		o.RetryMax = 0
	}
	if o.RetryWaitMin <= 0 {
		o.RetryWaitMin = 500 * time.Millisecond
	}
	if o.RetryWaitMax <= 0 {
		o.RetryWaitMax = 5 * time.Second
	}
	return o
}

// New returns a standard *http.Client with a bounded timeout, retries with
// exponential backoff and optional bearer authentication. After the last
// attempt the final response is returned as-is so callers can inspect its
// status.
func New(opts Options) *http.Client {
	opts = opts.withDefaults()

	var transport http.RoundTripper = http.DefaultTransport
	if opts.BearerToken != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.BearerToken}),
			Base:   transport,
		}
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Timeout: opts.Timeout, Transport: transport}
	client.RetryMax = opts.RetryMax
	client.RetryWaitMin = opts.RetryWaitMin
	client.RetryWaitMax = opts.RetryWaitMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = leveledLogger{entry: config.Logger.WithField("component", "httpclient")}

	return client.StandardClient()
}

// leveledLogger adapts logrus to retryablehttp.LeveledLogger.
type leveledLogger struct {
	entry *logrus.Entry
}

func (l leveledLogger) fields(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return l.entry.WithFields(fields)
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Error(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Info(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Debug(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.fields(keysAndValues).Warn(msg)
}
