package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds naming for the collectors.
type Config struct {
	// Namespace is the prefix for all metrics (default: "handlecheck")
	Namespace string
	// Subsystem is an optional subsystem name (default: "username")
	Subsystem string
	// Buckets defines the histogram buckets for suggestion counts
	Buckets []float64
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Namespace: "handlecheck",
		Subsystem: "username",
		Buckets:   prometheus.LinearBuckets(0, 2, 8), // 0..14
	}
}

// Metrics holds the Prometheus collectors.
type Metrics struct {
	checksTotal *prometheus.CounterVec
	suggestions prometheus.Histogram
	dirSize     prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer, cfg Config) (*Metrics, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	def := DefaultConfig()
	if cfg.Namespace == "" {
		cfg.Namespace = def.Namespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = def.Subsystem
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = def.Buckets
	}

	m := &Metrics{
		checksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "checks_total",
				Help:      "Total number of username checks by outcome.",
			},
			[]string{"outcome"},
		),
		suggestions: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "suggestions",
				Help:      "Number of suggestions returned per rejected check.",
				Buckets:   cfg.Buckets,
			},
		),
		dirSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "directory_size",
				Help:      "Number of registered usernames loaded at startup.",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.checksTotal, m.suggestions, m.dirSize} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Join(ErrFailedToRegister, err)
		}
	}
	return m, nil
}

// ObserveCheck counts a finished check. Suggestion counts are only observed
// for rejected usernames that reached suggestion generation.
func (m *Metrics) ObserveCheck(outcome string, suggestions int) {
	m.checksTotal.WithLabelValues(outcome).Inc()
	if outcome == "taken" || outcome == "restricted" {
		m.suggestions.Observe(float64(suggestions))
	}
}

// SetDirectorySize records how many usernames the directory holds.
func (m *Metrics) SetDirectorySize(n int) {
	m.dirSize.Set(float64(n))
}
