package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAvailabilityMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAvailabilityMetrics(reg)

	m.Observe("create", OutcomeSuccess)
	m.Observe("create", OutcomeSuccess)
	m.Observe("delete", OutcomeNotFound)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.operationsTotal.WithLabelValues("create", OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operationsTotal.WithLabelValues("delete", OutcomeNotFound)))
}

func TestHTTPMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/availability", "200", 0.01)

	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var availability *AvailabilityMetrics
	var httpMetrics *HTTPMetrics

	assert.NotPanics(t, func() {
		availability.Observe("create", OutcomeError)
		httpMetrics.ObserveRequest("GET", "/", "500", 1)
	})
}
