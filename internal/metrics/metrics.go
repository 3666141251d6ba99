// Package metrics holds the Prometheus collectors of the view service.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "celebrate"

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	viewsBuilt     *prometheus.CounterVec
	viewErrors     *prometheus.CounterVec
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	buildSeconds   *prometheus.HistogramVec
	skippedRecords prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		viewsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "views_built_total",
			Help:      "Views computed from a record snapshot.",
		}, []string{"screen"}),
		viewErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_errors_total",
			Help:      "Views that failed to build.",
		}, []string{"screen"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_cache_hits_total",
			Help:      "Views served from the view cache.",
		}, []string{"screen"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_cache_misses_total",
			Help:      "View requests that had to be computed.",
		}, []string{"screen"}),
		buildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_build_seconds",
			Help:      "Time spent computing a view.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}, []string{"screen"}),
		skippedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregate_skipped_records_total",
			Help:      "Records left out of aggregates because a price did not parse.",
		}),
	}
	reg.MustRegister(m.viewsBuilt, m.viewErrors, m.cacheHits, m.cacheMisses, m.buildSeconds, m.skippedRecords)
	return m
}

// ObserveView records the outcome of one view request.
func (m *Metrics) ObserveView(screen string, cacheHit bool, took time.Duration, err error) {
	if m == nil {
		return
	}
	switch {
	case err != nil:
		m.viewErrors.WithLabelValues(screen).Inc()
	case cacheHit:
		m.cacheHits.WithLabelValues(screen).Inc()
	default:
		m.cacheMisses.WithLabelValues(screen).Inc()
		m.viewsBuilt.WithLabelValues(screen).Inc()
		m.buildSeconds.WithLabelValues(screen).Observe(took.Seconds())
	}
}

// AddSkipped counts records skipped by the aggregator.
func (m *Metrics) AddSkipped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.skippedRecords.Add(float64(n))
}

// WriteText writes every gathered family in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
