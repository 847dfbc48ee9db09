package schoolmanager

import (
	"fmt"
	"slices"
	"time"

	"github.com/Sloozu/SchoolManagerCase/types"
)

// Processor validates assignment batches and produces new roster snapshots.
//
// Apply is a pure, synchronous computation: it performs no I/O, holds no
// state between calls, and never mutates its input. A single Processor may
// be shared by concurrent callers as long as each call operates on its own
// (state, request) pair; coordinating concurrent writers of the same
// underlying roster is the storage layer's job (see the store package).
type Processor struct {
	opts *options
}

// NewProcessor creates an assignment processor.
//
// Parameters:
//   - opts: Optional configuration (WithLogger, WithMetrics,
//     WithAllowUnassignedPupils)
//
// Returns:
//   - *Processor: New processor instance
//
// Example:
//
//	proc := schoolmanager.NewProcessor(
//	    schoolmanager.WithLogger(logging.NewSlogDefault()),
//	    schoolmanager.WithMetrics(metrics.NewPrometheus(nil, "")),
//	)
func NewProcessor(opts ...Option) *Processor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Processor{opts: o}
}

// Apply validates a batch of assignments against the current state and
// produces a new, fully consistent state.
//
// The algorithm:
//  1. Reject states whose class names are not unique, then validate every
//     entry against the current state (unknown class, unknown pupil,
//     duplicate pupil) before touching anything
//  2. Clone the state; carry every field verbatim except the derived ones
//     (pupil counts reset, class names overwritten per assignment)
//  3. Recompute per-class follow-up numbers and pupil counts in name order
//  4. Verify every pupil's class name resolves to an existing class, no
//     pupil is left unassigned, and no class exceeds its capacity
//
// Any failure rejects the whole batch: the returned state is nil, the input
// state is untouched, and the error matches one of ErrUnknownClass,
// ErrUnknownPupil, ErrDuplicateAssignment, ErrDuplicateClassName,
// ErrUnassignedPupil, ErrClassOverCapacity via errors.Is. The result does
// not depend on the order of the request entries.
//
// Parameters:
//   - current: Current roster snapshot (never mutated)
//   - req: Ordered batch of pupil-to-class assignments
//
// Returns:
//   - *types.State: Freshly allocated consistent snapshot (nil on failure)
//   - error: Validation failure, nil on success
func (p *Processor) Apply(current *types.State, req []types.Assignment) (*types.State, error) {
	start := time.Now()

	next, err := p.apply(current, req)
	if err != nil {
		p.opts.metrics.RecordApply(time.Since(start).Seconds(), false)
		p.opts.logger.Warn("assignment batch rejected", "entries", len(req), "error", err)

		return nil, err
	}

	p.opts.metrics.RecordApply(time.Since(start).Seconds(), true)
	p.opts.metrics.RecordRosterSize(len(next.Pupils), len(next.Classes))
	p.opts.logger.Debug("assignment batch applied",
		"entries", len(req),
		"pupils", len(next.Pupils),
		"classes", len(next.Classes))

	return next, nil
}

func (p *Processor) apply(current *types.State, req []types.Assignment) (*types.State, error) {
	classIdx := current.ClassIndex()
	pupilIdx := current.PupilIndex()

	// Membership is tracked by class name, so duplicate names would silently
	// merge two classes in the recompute below.
	classNames := make(map[string]bool, len(current.Classes))
	for _, c := range current.Classes {
		if classNames[c.Name] {
			p.opts.metrics.RecordValidationFailure("duplicate_class_name")
			return nil, fmt.Errorf("%w: %q", types.ErrDuplicateClassName, c.Name)
		}
		classNames[c.Name] = true
	}

	// Validate the whole batch before any mutation so a failure never leaves
	// partial state behind.
	target := make(map[int64]int64, len(req)) // pupil ID -> class ID
	for _, a := range req {
		if _, ok := classIdx[a.ClassID]; !ok {
			p.opts.metrics.RecordValidationFailure("unknown_class")
			return nil, fmt.Errorf("%w: class id %d", types.ErrUnknownClass, a.ClassID)
		}
		if _, ok := pupilIdx[a.PupilID]; !ok {
			p.opts.metrics.RecordValidationFailure("unknown_pupil")
			return nil, fmt.Errorf("%w: pupil id %d", types.ErrUnknownPupil, a.PupilID)
		}
		if _, ok := target[a.PupilID]; ok {
			p.opts.metrics.RecordValidationFailure("duplicate_assignment")
			return nil, fmt.Errorf("%w: pupil id %d", types.ErrDuplicateAssignment, a.PupilID)
		}
		target[a.PupilID] = a.ClassID
	}

	// Structural copy: every field carried verbatim except the derived ones.
	next := current.Clone()
	for i := range next.Classes {
		next.Classes[i].PupilCount = 0
	}

	for pupilID, classID := range target {
		next.Pupils[pupilIdx[pupilID]].ClassName = next.Classes[classIdx[classID]].Name
	}

	// Recompute follow-up numbers and pupil counts per class. Membership is
	// by class name; names are unique within a state.
	for ci := range next.Classes {
		members := make([]int, 0, len(next.Pupils))
		for pi := range next.Pupils {
			if next.Pupils[pi].ClassName == next.Classes[ci].Name {
				members = append(members, pi)
			}
		}

		slices.SortFunc(members, func(a, b int) int {
			return next.Pupils[a].Compare(next.Pupils[b])
		})

		for rank, pi := range members {
			next.Pupils[pi].FollowUpNumber = rank + 1
		}
		next.Classes[ci].PupilCount = len(members)
	}

	// Final invariant checks over the recomputed snapshot. A non-empty class
	// name must resolve to a class, otherwise the pupil counts toward nothing
	// and keeps a stale follow-up number.
	for i := range next.Pupils {
		name := next.Pupils[i].ClassName
		if name == "" {
			if p.opts.allowUnassigned && current.Pupils[i].ClassName == "" {
				continue
			}
			p.opts.metrics.RecordValidationFailure("unassigned_pupil")

			return nil, fmt.Errorf("%w: pupil id %d", types.ErrUnassignedPupil, next.Pupils[i].ID)
		}
		if !classNames[name] {
			p.opts.metrics.RecordValidationFailure("unknown_class")

			return nil, fmt.Errorf("%w: pupil id %d references class name %q",
				types.ErrUnknownClass, next.Pupils[i].ID, name)
		}
	}

	for _, c := range next.Classes {
		if c.PupilCount > c.MaxPupils {
			p.opts.metrics.RecordValidationFailure("over_capacity")

			return nil, fmt.Errorf("%w: class id %d has %d pupils, capacity %d",
				types.ErrClassOverCapacity, c.ID, c.PupilCount, c.MaxPupils)
		}
	}

	return next, nil
}
