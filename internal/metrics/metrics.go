// Package metrics exposes the Prometheus instruments of the expo service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cascade outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomePartial   = "partial"
	OutcomeFailed    = "failed"
	OutcomeResumed   = "resumed"
)

// Metrics tracks account creation, cascades, domain events and store
// latency.
type Metrics struct {
	UsersCreated    *prometheus.CounterVec
	Cascades        *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
	StoreDuration   *prometheus.HistogramVec
}

// New registers the instruments with reg.  Passing a fresh registry keeps
// tests independent of the process-wide default.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UsersCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "expo_users_created_total",
			Help: "Total number of accounts created, by role",
		}, []string{"role"}),
		Cascades: f.NewCounterVec(prometheus.CounterOpts{
			Name: "expo_cascades_total",
			Help: "Cascading removals by kind and outcome",
		}, []string{"kind", "outcome"}),
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "expo_domain_events_total",
			Help: "Domain events handed to the broker, by type and result",
		}, []string{"type", "result"}),
		StoreDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "expo_store_call_duration_seconds",
			Help:    "Duration of individual store calls",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
		}, []string{"op"}),
	}
}

// Nop returns instruments registered on a throwaway registry.
func Nop() *Metrics { return New(prometheus.NewRegistry()) }

func (m *Metrics) IncUserCreated(role string) { m.UsersCreated.WithLabelValues(role).Inc() }

func (m *Metrics) IncCascade(kind, outcome string) { m.Cascades.WithLabelValues(kind, outcome).Inc() }

func (m *Metrics) IncEvent(typ string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.EventsPublished.WithLabelValues(typ, result).Inc()
}

// ObserveStore records the duration of a store call started at start.
func (m *Metrics) ObserveStore(op string, start time.Time) {
	m.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
