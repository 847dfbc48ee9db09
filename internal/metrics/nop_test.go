package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_AllMethods(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.RecordApply(0.001, true)
		metrics.RecordApply(-1, false)
		metrics.RecordValidationFailure("over_capacity")
		metrics.RecordValidationFailure("")
		metrics.RecordRosterSize(24, 3)
		metrics.RecordRosterSize(0, 0)
		metrics.RecordDiff(5, 2)
		metrics.RecordKVOperationDuration("get", 0.01)
		metrics.RecordRevisionConflict()
		metrics.RecordUnchangedSave()
		metrics.RecordChangeSetPublished(5, 2, 42)
	})
}
