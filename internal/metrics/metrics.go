// Package metrics exposes Prometheus counters for quiz generation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeRejected = "rejected"
	OutcomeUpstream = "upstream_error"
	OutcomeInternal = "internal_error"
)

// Recorder records the result of one quiz generation.
type Recorder interface {
	ObserveQuiz(strategy, outcome string, questions int, durationSeconds float64)
}

// Noop implements Recorder without emitting anything.
type Noop struct{}

func (Noop) ObserveQuiz(string, string, int, float64) {}

// Prom implements Recorder backed by Prometheus collectors.
type Prom struct {
	quizzes   *prometheus.CounterVec
	questions *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

// NewProm registers the quiz collectors on reg, or on the default registerer
// when reg is nil.
func NewProm(namespace string, reg prometheus.Registerer) *Prom {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prom{
		quizzes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_generated_total",
			Help:      "Quiz generations by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_served_total",
			Help:      "Questions returned by strategy",
		}, []string{"strategy"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quiz_generation_duration_seconds",
			Help:      "Quiz generation latency by strategy",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
	}
	reg.MustRegister(p.quizzes, p.questions, p.latency)
	return p
}

func (p *Prom) ObserveQuiz(strategy, outcome string, questions int, durationSeconds float64) {
	p.quizzes.WithLabelValues(strategy, outcome).Inc()
	if questions > 0 {
		p.questions.WithLabelValues(strategy).Add(float64(questions))
	}
	p.latency.WithLabelValues(strategy).Observe(durationSeconds)
}

// Handler returns an HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
