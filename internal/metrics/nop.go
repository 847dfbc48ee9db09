// Package metrics provides MetricsCollector implementations for the
// SchoolManagerCase library.
package metrics

import "github.com/Sloozu/SchoolManagerCase/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	proc := schoolmanager.NewProcessor(schoolmanager.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ProcessorMetrics implementation

// RecordApply discards the apply attempt metric.
func (n *NopMetrics) RecordApply(_ /* duration */ float64, _ /* success */ bool) {
	// No-op
}

// RecordValidationFailure discards the validation failure metric.
func (n *NopMetrics) RecordValidationFailure(_ /* reason */ string) {
	// No-op
}

// RecordRosterSize discards the roster size gauges.
func (n *NopMetrics) RecordRosterSize(_ /* pupils */, _ /* classes */ int) {
	// No-op
}

// DifferencerMetrics implementation

// RecordDiff discards the change set size metric.
func (n *NopMetrics) RecordDiff(_ /* updatedPupils */, _ /* updatedClasses */ int) {
	// No-op
}

// StoreMetrics implementation

// RecordKVOperationDuration discards the KV latency metric.
func (n *NopMetrics) RecordKVOperationDuration(_ /* operation */ string, _ /* duration */ float64) {
	// No-op
}

// RecordRevisionConflict discards the revision conflict counter.
func (n *NopMetrics) RecordRevisionConflict() {
	// No-op
}

// RecordUnchangedSave discards the skipped save counter.
func (n *NopMetrics) RecordUnchangedSave() {
	// No-op
}

// PublisherMetrics implementation

// RecordChangeSetPublished discards the publish metric.
func (n *NopMetrics) RecordChangeSetPublished(_ /* updatedPupils */, _ /* updatedClasses */ int, _ /* version */ int64) {
	// No-op
}
