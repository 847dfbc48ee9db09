// Package store persists roster snapshots in a NATS JetStream KeyValue bucket.
//
// The core processor is pure: it receives the current state and returns a new
// one. RosterStore supplies the read-modify-write plumbing around it with
// optimistic concurrency control. Load returns the snapshot together with its
// KV revision; Save accepts that revision and fails with
// types.ErrRevisionConflict when another writer got there first, so callers
// can reload and retry:
//
//	state, rev, err := st.Load(ctx)
//	next, err := proc.Apply(state, req)
//	_, err = st.Save(ctx, next, rev) // ErrRevisionConflict on lost race
//
// Saves that would not change the persisted snapshot are skipped using an
// xxh3 fingerprint of the state.
package store
