package types

import "errors"

// Sentinel errors for the SchoolManagerCase library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Processor, Store, Publisher, etc.)
//   - Use consistent messages across similar error types

// Processor errors - Validation failures returned by Processor.Apply.
//
// Every validation failure is fatal to the whole batch: no partial
// application, no retry inside the core. Wrapped errors carry the offending
// pupil/class IDs and counts for diagnostics.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownClass is returned when an assignment references a class ID
	// absent from the current state, or when a pupil carries a class name
	// that matches no class.
	ErrUnknownClass = errors.New("unknown class")

	// ErrDuplicateClassName is returned when two classes in the state share
	// the same name. Class membership is tracked by name, so names must be
	// unique within a state.
	ErrDuplicateClassName = errors.New("duplicate class name")

	// ErrUnknownPupil is returned when an assignment references a pupil ID
	// absent from the current state.
	ErrUnknownPupil = errors.New("unknown pupil")

	// ErrDuplicateAssignment is returned when the same pupil ID appears in
	// more than one assignment entry.
	ErrDuplicateAssignment = errors.New("duplicate pupil assignment")

	// ErrUnassignedPupil is returned when, after applying the batch, a pupil
	// is left without a class.
	ErrUnassignedPupil = errors.New("pupil has no class assigned")

	// ErrClassOverCapacity is returned when the resulting pupil count of a
	// class exceeds its maximum capacity.
	ErrClassOverCapacity = errors.New("class over capacity")
)

// Store errors - Roster snapshot store errors.
var (
	// ErrStateNotFound is returned when no roster snapshot exists yet.
	ErrStateNotFound = errors.New("roster state not found")

	// ErrRevisionConflict is returned when a snapshot save loses an
	// optimistic concurrency race against a concurrent writer.
	ErrRevisionConflict = errors.New("roster revision conflict")
)

// Publisher errors - Change set publishing errors.
var (
	// ErrPublishFailed is returned when publishing a change set to NATS KV fails.
	ErrPublishFailed = errors.New("failed to publish change set")
)
