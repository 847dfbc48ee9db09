// Package schoolmanager provides the pure state-transition core for assigning
// pupils to classes and deriving the resulting change set.
//
// The library has two collaborating operations and no deeper architecture:
//
//   - Processor.Apply validates a batch of pupil-to-class assignments against
//     the current roster snapshot and produces a new, fully consistent
//     snapshot (class membership, per-class pupil counts, per-class
//     alphabetical follow-up numbering).
//   - Differencer.Diff compares two snapshots and emits the pupils and
//     classes whose observable attributes changed.
//
// # Quick Start
//
//	import schoolmanager "github.com/Sloozu/SchoolManagerCase"
//
//	proc := schoolmanager.NewProcessor()
//	next, err := proc.Apply(current, []schoolmanager.Assignment{
//	    {PupilID: 10, ClassID: 1},
//	    {PupilID: 11, ClassID: 1},
//	})
//	if err != nil {
//	    // errors.Is against ErrUnknownClass, ErrUnknownPupil,
//	    // ErrDuplicateAssignment, ErrUnassignedPupil, ErrClassOverCapacity
//	    return err
//	}
//
//	pupils, classes := schoolmanager.NewDifferencer().Diff(current, next)
//
// # Design
//
// Apply never mutates its input: every successful call allocates a fresh
// State, so the caller keeps the original snapshot for comparison or
// rollback. Validation is fail-fast and atomic; any violated invariant rejects
// the whole batch and the current snapshot stands.
//
// Loading the current snapshot, persisting the new one, and forwarding the
// change set to other services are the caller's responsibility. The store,
// notify, and xlsximport packages provide ready-made collaborator adapters
// backed by NATS JetStream KV and Excel workbooks; the core itself performs
// no I/O.
//
// # Collation
//
// Follow-up numbers are assigned in byte-wise ascending order of pupil name
// (case-sensitive, locale-free), ties broken by ascending pupil ID. The rule
// is fixed so that numbering is deterministic across platforms and runs.
package schoolmanager
