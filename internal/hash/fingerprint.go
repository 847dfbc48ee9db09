// Package hash provides deterministic fingerprinting of roster snapshots.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/Sloozu/SchoolManagerCase/types"
)

// Fingerprint computes a stable 64-bit digest of a roster snapshot.
//
// Two states with identical pupils and classes (same values, same order)
// produce the same fingerprint. The store uses this to skip writes when a
// save would not change the persisted snapshot.
//
// The digest covers every observable field, including the derived ones, so
// a follow-up renumbering alone changes the fingerprint.
//
// Parameters:
//   - s: Snapshot to digest (nil hashes as an empty state)
//
// Returns:
//   - uint64: xxh3 digest of the canonical encoding
func Fingerprint(s *types.State) uint64 {
	if s == nil {
		s = &types.State{}
	}

	h := xxh3.New()

	var ib [8]byte

	writeInt := func(v int64) {
		binary.BigEndian.PutUint64(ib[:], uint64(v)) //nolint:gosec // two's complement round-trip is intentional
		_, _ = h.Write(ib[:])
	}
	writeString := func(v string) {
		writeInt(int64(len(v)))
		_, _ = h.WriteString(v)
	}

	writeInt(int64(len(s.Pupils)))
	for _, p := range s.Pupils {
		writeInt(p.ID)
		writeString(p.Name)
		writeString(p.ClassName)
		writeInt(int64(p.FollowUpNumber))
	}

	writeInt(int64(len(s.Classes)))
	for _, c := range s.Classes {
		writeInt(c.ID)
		writeString(c.Name)
		writeString(c.Teacher)
		writeInt(int64(c.MaxPupils))
		writeInt(int64(c.PupilCount))
	}

	return h.Sum64()
}
