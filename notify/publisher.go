// Package notify publishes roster change sets to NATS JetStream KV for
// downstream collaborators.
//
// The differencer output is wrapped in a versioned types.ChangeSet and
// written to a well-known KV key. Interested services watch the key and react
// to updates; versions are monotonic across publisher restarts so consumers
// can detect stale or replayed change sets.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/Sloozu/SchoolManagerCase/internal/logger"
	"github.com/Sloozu/SchoolManagerCase/internal/metrics"
	"github.com/Sloozu/SchoolManagerCase/types"
)

// DefaultChangeSetKey is the KV key the latest change set is published under.
const DefaultChangeSetKey = "changes.latest"

// Config configures a ChangePublisher.
type Config struct {
	// KV is the JetStream KeyValue bucket change sets are published to. Required.
	KV jetstream.KeyValue

	// ChangeSetKey is the key the latest change set is stored under.
	// Defaults to DefaultChangeSetKey.
	ChangeSetKey string

	// Logger for publishing events. Defaults to a no-op logger.
	Logger types.Logger

	// Metrics collector for publishing operations. Defaults to no-op metrics.
	Metrics types.PublisherMetrics
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
	if c.ChangeSetKey == "" {
		c.ChangeSetKey = DefaultChangeSetKey
	}
	if c.Logger == nil {
		c.Logger = logger.NewNop()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.NewNop()
	}
}

// ChangePublisher publishes versioned change sets to NATS KV.
//
// Version monotonicity is maintained across restarts by discovering the
// version of the last published change set on construction.
type ChangePublisher struct {
	Config

	mu             sync.Mutex
	currentVersion int64
	lastPublish    time.Time
}

// New creates a change publisher and discovers the current version.
//
// Parameters:
//   - ctx: Context for the version discovery read
//   - cfg: Publisher configuration (KV bucket required)
//
// Returns:
//   - *ChangePublisher: New publisher instance ready to publish
//   - error: Validation error or KV access failure during discovery
//
// Example:
//
//	pub, err := notify.New(ctx, &notify.Config{KV: kv})
//	if err != nil {
//	    return err
//	}
//	if err := pub.Publish(ctx, pupilChanges, classChanges); err != nil {
//	    return err
//	}
func New(ctx context.Context, cfg *Config) (*ChangePublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.SetDefaults()

	p := &ChangePublisher{Config: *cfg}

	if err := p.discoverVersion(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

// discoverVersion seeds the version counter from the last published change set.
func (p *ChangePublisher) discoverVersion(ctx context.Context) error {
	entry, err := p.KV.Get(ctx, p.ChangeSetKey)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			p.Logger.Debug("no previous change set found", "key", p.ChangeSetKey)
			return nil
		}

		return fmt.Errorf("failed to read last change set: %w", err)
	}

	var last types.ChangeSet
	if err := json.Unmarshal(entry.Value(), &last); err != nil {
		// A malformed entry should not brick the publisher; start over and
		// let the next publish overwrite it.
		p.Logger.Warn("failed to decode last change set, resetting version", "error", err)
		return nil
	}

	p.mu.Lock()
	p.currentVersion = last.Version
	p.mu.Unlock()

	p.Logger.Info("discovered existing change set", "version", last.Version)

	return nil
}

// Publish wraps the differencer output in a versioned change set and writes
// it to KV.
//
// Empty change sets are not published: downstream consumers only care about
// actual changes, and skipping them keeps versions meaningful.
//
// Parameters:
//   - ctx: Context for cancellation
//   - pupils: Pupil updates from the differencer
//   - classes: Class updates from the differencer
//
// Returns:
//   - error: types.ErrPublishFailed (wrapped) on marshal or KV failure
func (p *ChangePublisher) Publish(ctx context.Context, pupils []types.UpdatedPupil, classes []types.UpdatedClass) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(pupils) == 0 && len(classes) == 0 {
		p.Logger.Debug("empty change set, nothing to publish")
		return nil
	}

	changeSet := types.ChangeSet{
		Version: p.currentVersion + 1,
		Pupils:  pupils,
		Classes: classes,
	}

	data, err := json.Marshal(changeSet)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrPublishFailed, err)
	}

	if _, err := p.KV.Put(ctx, p.ChangeSetKey, data); err != nil {
		return fmt.Errorf("%w: %w", types.ErrPublishFailed, err)
	}

	p.currentVersion = changeSet.Version
	p.lastPublish = time.Now()

	p.Metrics.RecordChangeSetPublished(len(pupils), len(classes), changeSet.Version)
	p.Logger.Info("change set published",
		"version", changeSet.Version,
		"updated_pupils", len(pupils),
		"updated_classes", len(classes))

	return nil
}

// CurrentVersion returns the version of the last published change set.
//
// This method is thread-safe and can be called concurrently.
//
// Returns:
//   - int64: Current version number (0 if nothing published yet)
func (p *ChangePublisher) CurrentVersion() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.currentVersion
}

// LastPublishTime returns the time of the last successful publish.
//
// Returns:
//   - time.Time: Time of last publish (zero time if never published)
func (p *ChangePublisher) LastPublishTime() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.lastPublish
}
