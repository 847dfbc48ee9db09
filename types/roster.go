package types

// Pupil represents a student tracked by the roster.
//
// The ID is immutable for the lifetime of the roster. ClassName and
// FollowUpNumber are derived: both are recomputed on every successful
// assignment update.
type Pupil struct {
	// ID uniquely identifies the pupil within a State.
	ID int64 `json:"id"`

	// Name is the pupil's display name. It drives the alphabetical
	// follow-up numbering within a class.
	Name string `json:"name"`

	// ClassName is the name of the class the pupil is assigned to.
	// Empty means unassigned; a consistent State has no unassigned pupils.
	ClassName string `json:"className"`

	// FollowUpNumber is the pupil's 1-based rank within its class,
	// assigned in ascending name order. Zero while unassigned.
	FollowUpNumber int `json:"followUpNumber"`
}

// Compare orders pupils by the roster collation rule: byte-wise ascending
// comparison of Name, ties broken by ascending ID.
//
// The rule is case-sensitive and locale-free so that follow-up numbering is
// deterministic across platforms.
//
// Returns:
//   - int: -1 if p sorts before q, 0 if equal, +1 if p sorts after q
func (p Pupil) Compare(q Pupil) int {
	if p.Name != q.Name {
		if p.Name < q.Name {
			return -1
		}

		return 1
	}
	if p.ID == q.ID {
		return 0
	}
	if p.ID < q.ID {
		return -1
	}

	return 1
}

// Class represents a pupil group with a fixed capacity.
//
// The ID is immutable. PupilCount is derived and recomputed on every
// successful assignment update.
type Class struct {
	// ID uniquely identifies the class within a State.
	ID int64 `json:"id"`

	// Name is the class name pupils reference through Pupil.ClassName.
	// Unique within a State.
	Name string `json:"name"`

	// Teacher is the display name of the assigned teacher.
	Teacher string `json:"teacher"`

	// MaxPupils is the maximum number of pupils the class can hold.
	MaxPupils int `json:"maxPupils"`

	// PupilCount is the current number of pupils assigned to the class.
	// Never exceeds MaxPupils in a consistent State.
	PupilCount int `json:"pupilCount"`
}
