package schoolmanager

import "github.com/Sloozu/SchoolManagerCase/types"

// Differencer compares two roster snapshots and emits the entities whose
// observable attributes changed.
//
// Diff is pure and has no failure modes; a Differencer may be shared by
// concurrent callers.
type Differencer struct {
	opts *options
}

// NewDifferencer creates a differencer.
//
// Parameters:
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Differencer: New differencer instance
func NewDifferencer(opts ...Option) *Differencer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Differencer{opts: o}
}

// Diff compares two snapshots and returns the changed pupils and classes.
//
// For each pupil in newState, an UpdatedPupil is emitted if the pupil does
// not exist in oldState or its class name or follow-up number differs. For
// each class in newState, an UpdatedClass is emitted if the class does not
// exist in oldState or its pupil count differs. Entities present only in
// oldState are ignored. Output ordering follows newState's roster order.
//
// Diff(s, s) yields empty change lists for any state s.
//
// Parameters:
//   - oldState: Previous snapshot (missing entries count as changed)
//   - newState: Snapshot whose entities drive the comparison
//
// Returns:
//   - []types.UpdatedPupil: Pupils that are new or changed
//   - []types.UpdatedClass: Classes that are new or changed
func (d *Differencer) Diff(oldState, newState *types.State) ([]types.UpdatedPupil, []types.UpdatedClass) {
	oldPupils := make(map[int64]types.Pupil, len(oldState.Pupils))
	for _, p := range oldState.Pupils {
		oldPupils[p.ID] = p
	}
	oldClasses := make(map[int64]types.Class, len(oldState.Classes))
	for _, c := range oldState.Classes {
		oldClasses[c.ID] = c
	}

	var pupils []types.UpdatedPupil
	for _, p := range newState.Pupils {
		prev, ok := oldPupils[p.ID]
		if ok && prev.ClassName == p.ClassName && prev.FollowUpNumber == p.FollowUpNumber {
			continue
		}
		pupils = append(pupils, types.UpdatedPupil{
			PupilID:        p.ID,
			ClassName:      p.ClassName,
			FollowUpNumber: p.FollowUpNumber,
		})
	}

	var classes []types.UpdatedClass
	for _, c := range newState.Classes {
		prev, ok := oldClasses[c.ID]
		if ok && prev.PupilCount == c.PupilCount {
			continue
		}
		classes = append(classes, types.UpdatedClass{
			ClassID:    c.ID,
			PupilCount: c.PupilCount,
		})
	}

	d.opts.metrics.RecordDiff(len(pupils), len(classes))
	d.opts.logger.Debug("computed change set",
		"updated_pupils", len(pupils),
		"updated_classes", len(classes))

	return pupils, classes
}
