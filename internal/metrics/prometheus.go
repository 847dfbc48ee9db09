package metrics

import (
	"sync"

	"github.com/Sloozu/SchoolManagerCase/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so that constructing the
// collector never fails, and unused collectors register nothing.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Processor metrics
	applyResults  *prometheus.CounterVec
	applyLatency  prometheus.Histogram
	applyFailures *prometheus.CounterVec
	rosterPupils  prometheus.Gauge
	rosterClasses prometheus.Gauge

	// Differencer metrics
	diffPupils  prometheus.Histogram
	diffClasses prometheus.Histogram

	// Store metrics
	kvLatency         *prometheus.HistogramVec
	revisionConflicts prometheus.Counter
	unchangedSaves    prometheus.Counter

	// Publisher metrics
	publishedChangeSets prometheus.Counter
	publishedPupils     prometheus.Histogram
	publishedClasses    prometheus.Histogram
	publishedVersion    prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "schoolmanager" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "schoolmanager"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.applyResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "processor",
			Name:      "apply_results_total",
			Help:      "Total Apply outcomes (success|failure).",
		}, []string{"result"})

		p.applyLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "processor",
			Name:      "apply_latency_seconds",
			Help:      "Latency of Apply operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 12), // 10us .. ~20ms
		})

		p.applyFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "processor",
			Name:      "validation_failures_total",
			Help:      "Total rejected assignment batches by reason.",
		}, []string{"reason"})

		p.rosterPupils = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "processor",
			Name:      "roster_pupils",
			Help:      "Number of pupils in the most recently produced state.",
		})

		p.rosterClasses = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "processor",
			Name:      "roster_classes",
			Help:      "Number of classes in the most recently produced state.",
		})

		p.diffPupils = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "differencer",
			Name:      "updated_pupils",
			Help:      "Number of pupil updates per computed change set.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1 .. 128
		})

		p.diffClasses = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "differencer",
			Name:      "updated_classes",
			Help:      "Number of class updates per computed change set.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 6), // 1 .. 32
		})

		p.kvLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "kv_operation_seconds",
			Help:      "Latency of NATS KV operations in seconds by operation.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms .. ~1s
		}, []string{"op"})

		p.revisionConflicts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "revision_conflicts_total",
			Help:      "Total snapshot saves rejected by optimistic concurrency.",
		})

		p.unchangedSaves = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "unchanged_saves_total",
			Help:      "Total snapshot saves skipped because the fingerprint matched.",
		})

		p.publishedChangeSets = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "change_sets_total",
			Help:      "Total published change sets.",
		})

		p.publishedPupils = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "change_set_pupils",
			Help:      "Number of pupil updates per published change set.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1 .. 128
		})

		p.publishedClasses = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "change_set_classes",
			Help:      "Number of class updates per published change set.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 6), // 1 .. 32
		})

		p.publishedVersion = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "current_version",
			Help:      "Version of the most recently published change set.",
		})

		p.reg.MustRegister(p.applyResults)
		p.reg.MustRegister(p.applyLatency)
		p.reg.MustRegister(p.applyFailures)
		p.reg.MustRegister(p.rosterPupils)
		p.reg.MustRegister(p.rosterClasses)
		p.reg.MustRegister(p.diffPupils)
		p.reg.MustRegister(p.diffClasses)
		p.reg.MustRegister(p.kvLatency)
		p.reg.MustRegister(p.revisionConflicts)
		p.reg.MustRegister(p.unchangedSaves)
		p.reg.MustRegister(p.publishedChangeSets)
		p.reg.MustRegister(p.publishedPupils)
		p.reg.MustRegister(p.publishedClasses)
		p.reg.MustRegister(p.publishedVersion)
	})
}

// ProcessorMetrics implementation

// RecordApply records an Apply attempt outcome and latency.
func (p *PrometheusCollector) RecordApply(duration float64, success bool) {
	p.ensureRegistered()
	result := "failure"
	if success {
		result = "success"
	}
	p.applyResults.WithLabelValues(result).Inc()
	p.applyLatency.Observe(duration)
}

// RecordValidationFailure increments the rejected batch counter for the reason.
func (p *PrometheusCollector) RecordValidationFailure(reason string) {
	p.ensureRegistered()
	p.applyFailures.WithLabelValues(reason).Inc()
}

// RecordRosterSize sets the roster size gauges.
func (p *PrometheusCollector) RecordRosterSize(pupils, classes int) {
	p.ensureRegistered()
	p.rosterPupils.Set(float64(pupils))
	p.rosterClasses.Set(float64(classes))
}

// DifferencerMetrics implementation

// RecordDiff observes the size of a computed change set.
func (p *PrometheusCollector) RecordDiff(updatedPupils, updatedClasses int) {
	p.ensureRegistered()
	p.diffPupils.Observe(float64(updatedPupils))
	p.diffClasses.Observe(float64(updatedClasses))
}

// StoreMetrics implementation

// RecordKVOperationDuration observes NATS KV operation latency.
func (p *PrometheusCollector) RecordKVOperationDuration(operation string, duration float64) {
	p.ensureRegistered()
	p.kvLatency.WithLabelValues(operation).Observe(duration)
}

// RecordRevisionConflict increments the lost-race counter.
func (p *PrometheusCollector) RecordRevisionConflict() {
	p.ensureRegistered()
	p.revisionConflicts.Inc()
}

// RecordUnchangedSave increments the skipped-save counter.
func (p *PrometheusCollector) RecordUnchangedSave() {
	p.ensureRegistered()
	p.unchangedSaves.Inc()
}

// PublisherMetrics implementation

// RecordChangeSetPublished records a published change set, its size and its version.
func (p *PrometheusCollector) RecordChangeSetPublished(updatedPupils, updatedClasses int, version int64) {
	p.ensureRegistered()
	p.publishedChangeSets.Inc()
	p.publishedPupils.Observe(float64(updatedPupils))
	p.publishedClasses.Observe(float64(updatedClasses))
	p.publishedVersion.Set(float64(version))
}
