package messaging

import (
	"context"

	"github.com/0xsj/overwatch-accounts/internal/domain/event"
)

// EventPublisher defines the interface for publishing domain events.
// Delivery is at-least-once and fire-and-forget from the caller's view.
type EventPublisher interface {
	// Publish publishes a single event.
	Publish(ctx context.Context, evt event.Event) error

	// PublishAll publishes multiple events.
	PublishAll(ctx context.Context, events []event.Event) error
}

// Topic names for account events.
const (
	TopicAccountEvents = "accounts.account"
)

// TopicForEvent returns the appropriate topic for an event type.
func TopicForEvent(evt event.Event) string {
	switch evt.AggregateType() {
	case event.AggregateTypeAccount:
		return TopicAccountEvents
	default:
		return TopicAccountEvents
	}
}
