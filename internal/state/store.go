package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/homepage/internal/domain"
	"github.com/nfrund/homepage/internal/pubsub"
)

// LikeRecordedEvent is published after every applied like.
var LikeRecordedEvent = pubsub.NewEvent[domain.LikeRecorded]("page.likes.recorded")

// Options configures a Store.
type Options struct {
	// TTL is how long an instance may stay untouched before Sweep evicts it.
	TTL time.Duration
	// Publisher receives LikeRecorded events. Optional.
	Publisher pubsub.Publisher
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Store is an in-memory registry of mounted page instances.
type Store struct {
	mu        sync.Mutex
	instances map[uuid.UUID]*domain.PageInstance
	ttl       time.Duration
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewStore creates an empty Store.
func NewStore(opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		instances: make(map[uuid.UUID]*domain.PageInstance),
		ttl:       opts.TTL,
		publisher: opts.Publisher,
		now:       now,
	}
}

// Mount creates a fresh instance with its like counter at zero.
func (s *Store) Mount(ctx context.Context) (domain.PageInstance, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return domain.PageInstance{}, fmt.Errorf("failed to generate instance id: %w", err)
	}

	now := s.now()
	inst := &domain.PageInstance{
		ID:        id.String(),
		Likes:     0,
		MountedAt: now,
		TouchedAt: now,
	}

	s.mu.Lock()
	s.instances[id] = inst
	s.mu.Unlock()

	return *inst, nil
}

// Get returns the current state of an instance.
func (s *Store) Get(ctx context.Context, id string) (domain.PageInstance, error) {
	key, err := parseID(id)
	if err != nil {
		return domain.PageInstance{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[key]
	if !ok {
		return domain.PageInstance{}, fmt.Errorf("get %s: %w", id, domain.ErrInstanceNotFound)
	}
	inst.TouchedAt = s.now()
	return *inst, nil
}

// Like increments the instance's counter by exactly one and returns the new
// state. The returned value is the one the caller must draw. The LikeRecorded
// event is published after the lock is released, so events for concurrent
// likes are not ordered by Likes.
func (s *Store) Like(ctx context.Context, id string) (domain.PageInstance, error) {
	key, err := parseID(id)
	if err != nil {
		return domain.PageInstance{}, err
	}

	s.mu.Lock()
	inst, ok := s.instances[key]
	if !ok {
		s.mu.Unlock()
		return domain.PageInstance{}, fmt.Errorf("like %s: %w", id, domain.ErrInstanceNotFound)
	}
	inst.Likes = inst.Likes + 1
	inst.TouchedAt = s.now()
	snapshot := *inst
	s.mu.Unlock()

	if s.publisher != nil {
		event := domain.LikeRecorded{InstanceID: snapshot.ID, Likes: snapshot.Likes}
		if err := LikeRecordedEvent.Publish(ctx, s.publisher, event); err != nil {
			// The like itself has been applied; a lost notification must not undo it.
			slog.Warn("Failed to publish like event", "instance_id", snapshot.ID, "error", err)
		}
	}

	return snapshot, nil
}

// Unmount drops an instance.
func (s *Store) Unmount(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.instances[key]; !ok {
		return fmt.Errorf("unmount %s: %w", id, domain.ErrInstanceNotFound)
	}
	delete(s.instances, key)
	return nil
}

// Len returns the number of mounted instances.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.instances)
}

// Sweep evicts instances idle since before now-TTL and reports how many were
// removed. A non-positive TTL disables eviction.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, inst := range s.instances {
		if inst.TouchedAt.Before(cutoff) {
			delete(s.instances, key)
			removed++
		}
	}
	return removed
}

// RunJanitor calls Sweep every interval until ctx is canceled.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				slog.Debug("Evicted idle page instances", "count", n)
			}
		}
	}
}

func parseID(id string) (uuid.UUID, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q: %w", id, domain.ErrInvalidInstanceID)
	}
	return key, nil
}
