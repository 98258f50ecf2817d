package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	origReg := prometheus.DefaultRegisterer
	origGather := prometheus.DefaultGatherer
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origReg
		prometheus.DefaultGatherer = origGather
	})
	return reg
}

func TestNoop(t *testing.T) {
	var m Noop
	m.ObserveQuiz("static", OutcomeOK, 5, 0.01)
}

func TestPromObserveQuiz(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewProm("quiz", reg)
	m.ObserveQuiz("static", OutcomeOK, 2, 0.01)
	m.ObserveQuiz("static", OutcomeOK, 3, 0.02)
	m.ObserveQuiz("chat", OutcomeUpstream, 0, 1.5)

	families, err := reg.Gather()
	require.NoError(t, err)

	assert.Equal(t, 2.0, counterValue(families, "quiz_quizzes_generated_total", map[string]string{"strategy": "static", "outcome": OutcomeOK}))
	assert.Equal(t, 1.0, counterValue(families, "quiz_quizzes_generated_total", map[string]string{"strategy": "chat", "outcome": OutcomeUpstream}))
	assert.Equal(t, 5.0, counterValue(families, "quiz_questions_served_total", map[string]string{"strategy": "static"}))
	assert.Equal(t, 0.0, counterValue(families, "quiz_questions_served_total", map[string]string{"strategy": "chat"}))
}

func TestHandlerServesMetrics(t *testing.T) {
	withTestRegistry(t)
	NewProm("quiz", nil).ObserveQuiz("generator", OutcomeOK, 1, 0.1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewPromSeparateRegistries(t *testing.T) {
	first, second := prometheus.NewRegistry(), prometheus.NewRegistry()
	assert.NotPanics(t, func() {
		NewProm("quiz", first)
		NewProm("quiz", second)
	})
	assert.Panics(t, func() { NewProm("quiz", first) })
}

func counterValue(families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			if labelsMatch(metric.GetLabel(), labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(pairs []*dto.LabelPair, want map[string]string) bool {
	if len(pairs) != len(want) {
		return false
	}
	for _, pair := range pairs {
		if want[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}
