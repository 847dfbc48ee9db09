package types

// Assignment is a single requested pupil-to-class pairing.
//
// A batch of assignments is applied atomically by the processor: either every
// entry validates and a new State is produced, or the batch is rejected and
// the current State stands.
type Assignment struct {
	// PupilID references an existing pupil in the current State.
	PupilID int64 `json:"pupilId"`

	// ClassID references an existing class in the current State.
	ClassID int64 `json:"classId"`
}

// UpdatedPupil records a pupil whose observable attributes changed between
// two snapshots. Emitted only when the pupil is new or its class name or
// follow-up number actually differs.
type UpdatedPupil struct {
	// PupilID identifies the changed pupil.
	PupilID int64 `json:"pupilId"`

	// ClassName is the pupil's class name in the new snapshot.
	ClassName string `json:"className"`

	// FollowUpNumber is the pupil's follow-up number in the new snapshot.
	FollowUpNumber int `json:"followUpNumber"`
}

// UpdatedClass records a class whose pupil count changed between two
// snapshots. Emitted only when the class is new or its count differs.
type UpdatedClass struct {
	// ClassID identifies the changed class.
	ClassID int64 `json:"classId"`

	// PupilCount is the class's pupil count in the new snapshot.
	PupilCount int `json:"pupilCount"`
}

// ChangeSet is the versioned envelope used to publish diff output to
// downstream collaborators.
//
// Versions are monotonically increasing across publisher restarts so
// consumers can detect stale or replayed change sets.
type ChangeSet struct {
	// Version is a monotonically increasing change set version.
	Version int64 `json:"version"`

	// Pupils lists the pupils whose attributes changed.
	Pupils []UpdatedPupil `json:"pupils"`

	// Classes lists the classes whose pupil count changed.
	Classes []UpdatedClass `json:"classes"`
}

// Empty reports whether the change set carries no updates.
//
// Returns:
//   - bool: true if both change lists are empty
func (c ChangeSet) Empty() bool {
	return len(c.Pupils) == 0 && len(c.Classes) == 0
}
