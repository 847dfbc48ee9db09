package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/Sloozu/SchoolManagerCase/internal/hash"
	"github.com/Sloozu/SchoolManagerCase/internal/logger"
	"github.com/Sloozu/SchoolManagerCase/internal/metrics"
	"github.com/Sloozu/SchoolManagerCase/types"
)

// DefaultStateKey is the KV key under which the roster snapshot is stored.
const DefaultStateKey = "roster.state"

// Config configures a RosterStore.
type Config struct {
	// KV is the JetStream KeyValue bucket holding the snapshot. Required.
	KV jetstream.KeyValue

	// StateKey is the key the snapshot is stored under.
	// Defaults to DefaultStateKey.
	StateKey string

	// Logger for store events. Defaults to a no-op logger.
	Logger types.Logger

	// Metrics collector for store operations. Defaults to no-op metrics.
	Metrics types.StoreMetrics
}

// Validate checks that required fields are set.
//
// Returns:
//   - error: types.ErrInvalidConfig (wrapped) if a required field is missing
func (c *Config) Validate() error {
	if c.KV == nil {
		return fmt.Errorf("%w: KV bucket is required", types.ErrInvalidConfig)
	}

	return nil
}

// SetDefaults fills in defaults for optional fields.
func (c *Config) SetDefaults() {
	if c.StateKey == "" {
		c.StateKey = DefaultStateKey
	}
	if c.Logger == nil {
		c.Logger = logger.NewNop()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.NewNop()
	}
}

// savedSnapshot tracks the fingerprint of the last snapshot seen at a
// revision, used to skip writes that would not change the stored value.
type savedSnapshot struct {
	revision    uint64
	fingerprint uint64
}

// RosterStore reads and writes roster snapshots with optimistic concurrency.
//
// A RosterStore is safe for concurrent use. It keeps no authoritative state:
// the KV bucket is the source of truth, and the internal cache only
// short-circuits no-op saves.
type RosterStore struct {
	Config

	// seen caches the last loaded/saved snapshot per key.
	seen *xsync.Map[string, savedSnapshot]
}

// New creates a roster store with validated configuration.
//
// Parameters:
//   - cfg: Store configuration (KV bucket required)
//
// Returns:
//   - *RosterStore: New store instance
//   - error: Validation error if required fields are missing
//
// Example:
//
//	kv, err := kvutil.EnsureKVBucket(ctx, js, jetstream.KeyValueConfig{Bucket: "roster"}, 3)
//	if err != nil {
//	    return err
//	}
//	st, err := store.New(&store.Config{KV: kv})
func New(cfg *Config) (*RosterStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.SetDefaults()

	return &RosterStore{
		Config: *cfg,
		seen:   xsync.NewMap[string, savedSnapshot](),
	}, nil
}

// Load reads the current roster snapshot and its KV revision.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - *types.State: The stored snapshot
//   - uint64: KV revision to pass to Save for conflict detection
//   - error: types.ErrStateNotFound if no snapshot exists yet, otherwise
//     a wrapped KV or decode error
func (s *RosterStore) Load(ctx context.Context) (*types.State, uint64, error) {
	start := time.Now()
	entry, err := s.KV.Get(ctx, s.StateKey)
	s.Metrics.RecordKVOperationDuration("get", time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, 0, types.ErrStateNotFound
		}

		return nil, 0, fmt.Errorf("failed to load roster state: %w", err)
	}

	var state types.State
	if err := json.Unmarshal(entry.Value(), &state); err != nil {
		return nil, 0, fmt.Errorf("failed to decode roster state: %w", err)
	}

	revision := entry.Revision()
	s.seen.Store(s.StateKey, savedSnapshot{revision: revision, fingerprint: hash.Fingerprint(&state)})

	s.Logger.Debug("roster state loaded",
		"revision", revision,
		"pupils", len(state.Pupils),
		"classes", len(state.Classes))

	return &state, revision, nil
}

// Save writes a new roster snapshot, guarded by the revision from Load.
//
// Pass revision 0 to create the initial snapshot; creation fails with
// types.ErrRevisionConflict if a snapshot already exists. A save whose
// fingerprint matches the snapshot already stored at the given revision is
// skipped and returns the same revision.
//
// Parameters:
//   - ctx: Context for cancellation
//   - state: Snapshot to persist
//   - revision: Revision returned by the Load this state was derived from
//
// Returns:
//   - uint64: New KV revision of the stored snapshot
//   - error: types.ErrRevisionConflict if a concurrent writer won the race,
//     otherwise a wrapped KV or encode error
func (s *RosterStore) Save(ctx context.Context, state *types.State, revision uint64) (uint64, error) {
	fingerprint := hash.Fingerprint(state)
	if prev, ok := s.seen.Load(s.StateKey); ok && prev.revision == revision && prev.fingerprint == fingerprint {
		s.Metrics.RecordUnchangedSave()
		s.Logger.Debug("roster state unchanged, skipping save", "revision", revision)

		return revision, nil
	}

	data, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("failed to encode roster state: %w", err)
	}

	start := time.Now()

	var newRevision uint64
	if revision == 0 {
		newRevision, err = s.KV.Create(ctx, s.StateKey, data)
		s.Metrics.RecordKVOperationDuration("create", time.Since(start).Seconds())

		if errors.Is(err, jetstream.ErrKeyExists) {
			s.Metrics.RecordRevisionConflict()
			return 0, fmt.Errorf("%w: snapshot already exists", types.ErrRevisionConflict)
		}
	} else {
		newRevision, err = s.KV.Update(ctx, s.StateKey, data, revision)
		s.Metrics.RecordKVOperationDuration("update", time.Since(start).Seconds())

		if isWrongLastRevision(err) {
			s.Metrics.RecordRevisionConflict()
			s.Logger.Warn("roster save lost revision race", "revision", revision)

			return 0, fmt.Errorf("%w: expected revision %d", types.ErrRevisionConflict, revision)
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to save roster state: %w", err)
	}

	s.seen.Store(s.StateKey, savedSnapshot{revision: newRevision, fingerprint: fingerprint})

	s.Logger.Info("roster state saved",
		"revision", newRevision,
		"pupils", len(state.Pupils),
		"classes", len(state.Classes))

	return newRevision, nil
}

// isWrongLastRevision checks whether a KV update failed because the expected
// revision no longer matches.
//
// The JetStream API reports this as a "wrong last sequence" error. It may
// arrive as a typed API error or wrapped with context, so both forms are
// handled.
func isWrongLastRevision(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *jetstream.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode == jetstream.JSErrCodeStreamWrongLastSequence {
		return true
	}

	return strings.Contains(err.Error(), "wrong last sequence")
}
