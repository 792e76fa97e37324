package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for application evaluation.
type Metrics struct {
	// Decisions by outcome and the rule that produced them
	Decisions *prometheus.CounterVec

	// Frequent flyer lookups by validation mode
	ValidatorLookups *prometheus.CounterVec

	// Evaluations that failed because the validator reported an error
	ValidatorErrors prometheus.Counter

	EvaluateLatency prometheus.Histogram
}

// New creates the evaluation metrics and registers them with reg.
// A nil reg registers with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardapp_evaluation_decisions_total",
			Help: "Total application decisions by decision and reason",
		}, []string{"decision", "reason"}),

		ValidatorLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardapp_evaluation_validator_lookups_total",
			Help: "Total frequent flyer number lookups by validation mode",
		}, []string{"mode"}), // mode: "basic", "detailed"

		ValidatorErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "cardapp_evaluation_validator_errors_total",
			Help: "Total evaluations aborted by a validator failure",
		}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cardapp_evaluation_duration_seconds",
			Help:    "Duration of application evaluation including validator calls",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}),
	}
}

// IncrementDecision records a decision outcome.
func (m *Metrics) IncrementDecision(decision, reason string) {
	if m != nil {
		m.Decisions.WithLabelValues(decision, reason).Inc()
	}
}

// IncrementValidatorLookup records a frequent flyer number lookup.
func (m *Metrics) IncrementValidatorLookup(mode string) {
	if m != nil {
		m.ValidatorLookups.WithLabelValues(mode).Inc()
	}
}

// IncrementValidatorError records an evaluation aborted by the validator.
func (m *Metrics) IncrementValidatorError() {
	if m != nil {
		m.ValidatorErrors.Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
