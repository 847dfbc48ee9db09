package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	ProcessorMetrics
	DifferencerMetrics
	StoreMetrics
	PublisherMetrics
}

// ProcessorMetrics defines metrics for assignment processing.
type ProcessorMetrics interface {
	// RecordApply records an Apply attempt.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - success: true if a new state was produced, false on validation failure
	RecordApply(duration float64, success bool)

	// RecordValidationFailure records a rejected batch by failure reason.
	//
	// Parameters:
	//   - reason: Failure reason ("unknown_class", "unknown_pupil",
	//     "duplicate_assignment", "duplicate_class_name", "unassigned_pupil",
	//     "over_capacity")
	RecordValidationFailure(reason string)

	// RecordRosterSize sets the current roster size gauges.
	//
	// Parameters:
	//   - pupils: Number of pupils in the produced state
	//   - classes: Number of classes in the produced state
	RecordRosterSize(pupils, classes int)
}

// DifferencerMetrics defines metrics for diff computation.
type DifferencerMetrics interface {
	// RecordDiff records the size of a computed change set.
	//
	// Parameters:
	//   - updatedPupils: Number of emitted pupil updates
	//   - updatedClasses: Number of emitted class updates
	RecordDiff(updatedPupils, updatedClasses int)
}

// StoreMetrics defines metrics for roster snapshot storage.
type StoreMetrics interface {
	// RecordKVOperationDuration records NATS KV operation latency.
	//
	// Parameters:
	//   - operation: Operation type ("get", "create", "update")
	//   - duration: Time taken in seconds
	RecordKVOperationDuration(operation string, duration float64)

	// RecordRevisionConflict records a lost optimistic concurrency race.
	RecordRevisionConflict()

	// RecordUnchangedSave records a save skipped because the snapshot
	// fingerprint matched the stored one.
	RecordUnchangedSave()
}

// PublisherMetrics defines metrics for change set publishing.
type PublisherMetrics interface {
	// RecordChangeSetPublished records a published change set.
	//
	// Parameters:
	//   - updatedPupils: Number of pupil updates in the change set
	//   - updatedClasses: Number of class updates in the change set
	//   - version: Published change set version
	RecordChangeSetPublished(updatedPupils, updatedClasses int, version int64)
}
