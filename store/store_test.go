package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	smtest "github.com/Sloozu/SchoolManagerCase/testing"
	"github.com/Sloozu/SchoolManagerCase/types"
)

func testState() *types.State {
	return &types.State{
		Pupils: []types.Pupil{
			{ID: 10, Name: "Zoe", ClassName: "A", FollowUpNumber: 2},
			{ID: 11, Name: "Amy", ClassName: "A", FollowUpNumber: 1},
		},
		Classes: []types.Class{
			{ID: 1, Name: "A", Teacher: "Smith", MaxPupils: 2, PupilCount: 2},
		},
	}
}

func newTestStore(t *testing.T) *RosterStore {
	t.Helper()

	_, nc := smtest.StartEmbeddedNATS(t)
	kv := smtest.CreateJetStreamKV(t, nc, "roster")

	st, err := New(&Config{KV: kv, Logger: smtest.NewTestLogger(t)})
	require.NoError(t, err)

	return st
}

func TestNew(t *testing.T) {
	t.Run("requires a KV bucket", func(t *testing.T) {
		_, err := New(&Config{})
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})

	t.Run("applies defaults", func(t *testing.T) {
		st := newTestStore(t)
		require.Equal(t, DefaultStateKey, st.StateKey)
		require.NotNil(t, st.Logger)
		require.NotNil(t, st.Metrics)
	})
}

func TestRosterStore_LoadSave(t *testing.T) {
	t.Run("load before any save reports no state", func(t *testing.T) {
		st := newTestStore(t)

		_, _, err := st.Load(t.Context())

		require.ErrorIs(t, err, types.ErrStateNotFound)
	})

	t.Run("saved state round-trips", func(t *testing.T) {
		st := newTestStore(t)
		state := testState()

		rev, err := st.Save(t.Context(), state, 0)
		require.NoError(t, err)
		require.NotZero(t, rev)

		loaded, loadedRev, err := st.Load(t.Context())
		require.NoError(t, err)
		require.Equal(t, rev, loadedRev)
		require.Equal(t, state, loaded)
	})

	t.Run("initial save fails when a snapshot already exists", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Save(t.Context(), testState(), 0)
		require.NoError(t, err)

		_, err = st.Save(t.Context(), &types.State{}, 0)
		require.ErrorIs(t, err, types.ErrRevisionConflict)
	})

	t.Run("stale revision loses the race", func(t *testing.T) {
		st := newTestStore(t)

		rev, err := st.Save(t.Context(), testState(), 0)
		require.NoError(t, err)

		// A concurrent writer advances the snapshot.
		updated := testState()
		updated.Classes[0].Teacher = "Brown"
		_, err = st.Save(t.Context(), updated, rev)
		require.NoError(t, err)

		// Saving against the old revision must now conflict.
		stale := testState()
		stale.Classes[0].Teacher = "Jones"
		_, err = st.Save(t.Context(), stale, rev)
		require.ErrorIs(t, err, types.ErrRevisionConflict)
	})

	t.Run("identical snapshot save is skipped", func(t *testing.T) {
		st := newTestStore(t)
		state := testState()

		rev, err := st.Save(t.Context(), state, 0)
		require.NoError(t, err)

		again, err := st.Save(t.Context(), state.Clone(), rev)
		require.NoError(t, err)
		require.Equal(t, rev, again)

		// KV revision is unchanged: nothing was written.
		_, loadedRev, err := st.Load(t.Context())
		require.NoError(t, err)
		require.Equal(t, rev, loadedRev)
	})

	t.Run("changed snapshot advances the revision", func(t *testing.T) {
		st := newTestStore(t)

		rev, err := st.Save(t.Context(), testState(), 0)
		require.NoError(t, err)

		updated := testState()
		updated.Pupils[0].FollowUpNumber = 1
		updated.Pupils[1].FollowUpNumber = 2

		newRev, err := st.Save(t.Context(), updated, rev)
		require.NoError(t, err)
		require.Greater(t, newRev, rev)
	})
}
