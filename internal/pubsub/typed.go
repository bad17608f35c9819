package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to a payload type so publishers and subscribers
// agree on the JSON shape without repeating the topic string.
type Event[T any] struct {
	topic string
}

// NewEvent creates a typed event for the given topic.
func NewEvent[T any](topic string) Event[T] {
	return Event[T]{topic: topic}
}

// Topic returns the topic name.
func (e Event[T]) Topic() string {
	return e.topic
}

// Publish encodes payload as JSON and publishes it on the event's topic.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", e.topic, err)
	}
	return pub.Publish(ctx, Message{Topic: e.topic, Payload: data})
}

// Subscribe decodes each message on the event's topic before calling fn.
func (e Event[T]) Subscribe(ctx context.Context, sub Subscriber, fn func(ctx context.Context, payload T) error) error {
	return sub.Subscribe(ctx, e.topic, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", e.topic, err)
		}
		return fn(ctx, payload)
	})
}
