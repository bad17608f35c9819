// Package activity follows like events published by the page state store.
package activity

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/nfrund/homepage/internal/domain"
	"github.com/nfrund/homepage/internal/pubsub"
	"github.com/nfrund/homepage/internal/state"
)

// Tracker counts recorded likes across all page instances.
type Tracker struct {
	recorded atomic.Int64
}

// NewTracker creates a Tracker with a zero count.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start subscribes the tracker to like events until ctx is canceled.
func (t *Tracker) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return state.LikeRecordedEvent.Subscribe(ctx, sub, t.handle)
}

func (t *Tracker) handle(ctx context.Context, ev domain.LikeRecorded) error {
	total := t.recorded.Add(1)
	slog.DebugContext(ctx, "Like recorded", "instance_id", ev.InstanceID, "likes", ev.Likes, "total", total)
	return nil
}

// LikesRecorded returns the number of like events seen so far.
func (t *Tracker) LikesRecorded() int64 {
	return t.recorded.Load()
}
