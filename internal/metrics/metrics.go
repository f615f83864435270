package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline state gauge values.
const (
	StateStopped  = 0
	StateStarting = 1
	StateRunning  = 2
	StateBackoff  = 3
)

// Metrics holds the Prometheus collectors of the cascade engine and the change-capture pipeline.
type Metrics struct {
	AuditEvents          *prometheus.CounterVec
	AuditDropped         *prometheus.CounterVec
	AuditPersistFailures prometheus.Counter
	AuditPublishFailures prometheus.Counter
	PipelineState        prometheus.Gauge
	PipelineRestarts     *prometheus.CounterVec
	CascadeDeletes       *prometheus.CounterVec
	CascadeFailures      *prometheus.CounterVec
	DeleteBlocked        prometheus.Counter
}

// New registers the collectors on reg. Production passes prometheus.DefaultRegisterer;
// tests pass a fresh prometheus.NewRegistry() so repeated construction does not collide.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AuditEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_audit_events_total",
			Help: "Audit records persisted, by collection and operation",
		}, []string{"collection", "operation"}),
		AuditDropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_audit_events_dropped_total",
			Help: "Change events discarded before an audit record was derived",
		}, []string{"reason"}),
		AuditPersistFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "estate_audit_persist_failures_total",
			Help: "Audit records that could not be written and were dropped",
		}),
		AuditPublishFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "estate_audit_publish_failures_total",
			Help: "Persisted audit records that could not be fanned out",
		}),
		PipelineState: f.NewGauge(prometheus.GaugeOpts{
			Name: "estate_change_capture_state",
			Help: "Change-capture pipeline state (0=stopped, 1=starting, 2=running, 3=backoff)",
		}),
		PipelineRestarts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_change_capture_restarts_total",
			Help: "Change-capture restarts, by cause",
		}, []string{"cause"}),
		CascadeDeletes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_cascade_deletes_total",
			Help: "Completed deletions, by entity and mode",
		}, []string{"entity", "mode"}),
		CascadeFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "estate_cascade_failures_total",
			Help: "Deletions aborted by a storage failure part way through the cascade",
		}, []string{"entity"}),
		DeleteBlocked: f.NewCounter(prometheus.CounterOpts{
			Name: "estate_floor_delete_blocked_total",
			Help: "Floor deletions refused because of pending property units",
		}),
	}
}

func (m *Metrics) IncAuditEvent(collection, operation string) {
	m.AuditEvents.WithLabelValues(collection, operation).Inc()
}

func (m *Metrics) IncAuditDropped(reason string) {
	m.AuditDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncPersistFailures() {
	m.AuditPersistFailures.Inc()
}

func (m *Metrics) IncPublishFailures() {
	m.AuditPublishFailures.Inc()
}

func (m *Metrics) SetPipelineState(state int) {
	m.PipelineState.Set(float64(state))
}

func (m *Metrics) IncPipelineRestart(cause string) {
	m.PipelineRestarts.WithLabelValues(cause).Inc()
}

func (m *Metrics) IncCascadeDelete(entity string, hard bool) {
	mode := "soft"
	if hard {
		mode = "hard"
	}
	m.CascadeDeletes.WithLabelValues(entity, mode).Inc()
}

func (m *Metrics) IncCascadeFailure(entity string) {
	m.CascadeFailures.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncDeleteBlocked() {
	m.DeleteBlocked.Inc()
}
