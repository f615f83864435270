package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncAuditEvent("buildings", "delete")
	m.IncAuditEvent("buildings", "delete")
	m.IncCascadeDelete("buildings", true)
	m.SetPipelineState(StateRunning)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuditEvents.WithLabelValues("buildings", "delete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CascadeDeletes.WithLabelValues("buildings", "hard")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CascadeDeletes.WithLabelValues("buildings", "soft")))
	assert.Equal(t, float64(StateRunning), testutil.ToFloat64(m.PipelineState))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
