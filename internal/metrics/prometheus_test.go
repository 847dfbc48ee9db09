package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheus(t *testing.T) {
	t.Run("uses defaults for nil registerer and empty namespace", func(t *testing.T) {
		collector := NewPrometheus(nil, "")

		require.NotNil(t, collector)
		require.Equal(t, "schoolmanager", collector.namespace)
	})

	t.Run("keeps provided registerer and namespace", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := NewPrometheus(reg, "roster")

		require.Equal(t, "roster", collector.namespace)
	})
}

func TestPrometheusCollector_RecordsWithoutPanic(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	require.NotPanics(t, func() {
		collector.RecordApply(0.0001, true)
		collector.RecordApply(0.0002, false)
		collector.RecordValidationFailure("unknown_class")
		collector.RecordRosterSize(10, 2)
		collector.RecordDiff(3, 1)
		collector.RecordKVOperationDuration("put", 0.005)
		collector.RecordRevisionConflict()
		collector.RecordUnchangedSave()
		collector.RecordChangeSetPublished(3, 1, 7)
	})

	// All metric families registered lazily on first record.
	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestPrometheusCollector_LazyRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	// Nothing registered before first use.
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)

	collector.RecordRevisionConflict()

	families, err = reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}

func TestPrometheusCollector_PublisherChangeSetSizes(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	collector.RecordChangeSetPublished(3, 1, 7)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}

	pupils, ok := byName["test_publisher_change_set_pupils"]
	require.True(t, ok)
	require.Equal(t, 3.0, pupils.GetMetric()[0].GetHistogram().GetSampleSum())

	classes, ok := byName["test_publisher_change_set_classes"]
	require.True(t, ok)
	require.Equal(t, 1.0, classes.GetMetric()[0].GetHistogram().GetSampleSum())
}
