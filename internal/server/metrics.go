package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-formview/pkg/projects"
)

// Outcome label values for the submissions counter.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Metrics exposes form counters on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	records     prometheus.Counter
	sinkErrors  prometheus.Counter
}

// NewMetrics registers the form counters under prefix (default "formview").
func NewMetrics(prefix string) *Metrics {
	if prefix == "" {
		prefix = "formview"
	}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_submissions_total",
				Help: "Form submissions by outcome",
			},
			[]string{"outcome"},
		),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_records_total",
			Help: "Records handed to the sink",
		}),
		sinkErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_sink_errors_total",
			Help: "Records the sink failed to accept",
		}),
	}
	reg.MustRegister(m.submissions, m.records, m.sinkErrors)
	return m
}

// Observe counts one submission.
func (m *Metrics) Observe(outcome projects.Outcome) {
	label := OutcomeRejected
	if outcome.Submitted {
		label = OutcomeAccepted
	}
	m.submissions.WithLabelValues(label).Inc()
}

// Sink wraps next so every record and sink failure is counted.
func (m *Metrics) Sink(next projects.Sink) projects.Sink {
	return projects.SinkFunc(func(r projects.Record) error {
		m.records.Inc()
		if next == nil {
			return nil
		}
		err := next.Accept(r)
		if err != nil {
			m.sinkErrors.Inc()
		}
		return err
	})
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
