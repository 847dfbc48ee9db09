package schoolmanager

import (
	"github.com/Sloozu/SchoolManagerCase/internal/logger"
	"github.com/Sloozu/SchoolManagerCase/internal/metrics"
)

// Option configures a Processor or Differencer with optional dependencies.
type Option func(*options)

// options holds optional core configuration.
type options struct {
	logger          Logger
	metrics         MetricsCollector
	allowUnassigned bool
}

// defaultOptions returns options with no-op logging and metrics.
func defaultOptions() *options {
	return &options{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}
}

// WithLogger sets a structured logger.
//
// Parameters:
//   - l: Logger implementation (e.g., logging.NewSlogDefault())
//
// Returns:
//   - Option: Functional option for NewProcessor / NewDifferencer
//
// Example:
//
//	proc := schoolmanager.NewProcessor(schoolmanager.WithLogger(logging.NewSlogDefault()))
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - m: MetricsCollector implementation (e.g., metrics.NewPrometheus(nil, ""))
//
// Returns:
//   - Option: Functional option for NewProcessor / NewDifferencer
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithAllowUnassignedPupils permits pupils that were already unassigned in
// the input state to remain unassigned when the request does not cover them.
//
// By default Apply is strict: after applying the batch, any pupil without a
// class rejects the whole update with ErrUnassignedPupil, including pupils
// the request never mentioned. Enabling this option skips the check for
// pupils that were also unassigned in the input state, which is useful while
// a roster is still being filled in.
//
// Returns:
//   - Option: Functional option for NewProcessor
func WithAllowUnassignedPupils() Option {
	return func(o *options) {
		o.allowUnassigned = true
	}
}
