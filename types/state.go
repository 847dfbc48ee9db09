package types

// State is a snapshot of the full roster: all pupils and all classes.
//
// States are immutable by convention. The assignment processor never mutates
// its input; every successful update allocates a fresh State, leaving the
// caller's snapshot intact for comparison or rollback. A consistent State
// satisfies:
//
//   - every pupil has a non-empty ClassName naming an existing class
//   - every class's PupilCount equals the number of pupils pointing at it
//     and does not exceed MaxPupils
//   - within each class, follow-up numbers form a contiguous 1..PupilCount
//     sequence in ascending name order (ties by ascending pupil ID)
type State struct {
	// Pupils is the ordered pupil roster. Order is preserved across updates
	// and drives diff output ordering.
	Pupils []Pupil `json:"pupils"`

	// Classes is the ordered class list. Order is preserved across updates.
	Classes []Class `json:"classes"`
}

// Clone returns a deep copy of the state.
//
// The copy shares no slice storage with the receiver, so mutating one
// snapshot can never be observed through the other.
//
// Returns:
//   - *State: Freshly allocated copy (never nil)
func (s *State) Clone() *State {
	clone := &State{
		Pupils:  make([]Pupil, len(s.Pupils)),
		Classes: make([]Class, len(s.Classes)),
	}
	copy(clone.Pupils, s.Pupils)
	copy(clone.Classes, s.Classes)

	return clone
}

// PupilIndex builds a lookup from pupil ID to the pupil's position in Pupils.
//
// Returns:
//   - map[int64]int: Index keyed by pupil ID
func (s *State) PupilIndex() map[int64]int {
	idx := make(map[int64]int, len(s.Pupils))
	for i, p := range s.Pupils {
		idx[p.ID] = i
	}

	return idx
}

// ClassIndex builds a lookup from class ID to the class's position in Classes.
//
// Returns:
//   - map[int64]int: Index keyed by class ID
func (s *State) ClassIndex() map[int64]int {
	idx := make(map[int64]int, len(s.Classes))
	for i, c := range s.Classes {
		idx[c.ID] = i
	}

	return idx
}

// ClassByID returns the class with the given ID.
//
// Returns:
//   - Class: The matching class (zero value if not found)
//   - bool: true if the class exists
func (s *State) ClassByID(id int64) (Class, bool) {
	for _, c := range s.Classes {
		if c.ID == id {
			return c, true
		}
	}

	return Class{}, false
}

// PupilByID returns the pupil with the given ID.
//
// Returns:
//   - Pupil: The matching pupil (zero value if not found)
//   - bool: true if the pupil exists
func (s *State) PupilByID(id int64) (Pupil, bool) {
	for _, p := range s.Pupils {
		if p.ID == id {
			return p, true
		}
	}

	return Pupil{}, false
}
