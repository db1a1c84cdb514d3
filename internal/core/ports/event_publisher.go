package ports

import (
	"context"

	"plasmashipping/internal/core/domain/events"
)

// EventPublisher publishes lifecycle events to the shipping topic.
type EventPublisher interface {
	// Publish sends a domain event. Implementations must not block the
	// calling use case beyond the configured write timeout.
	Publish(ctx context.Context, event events.DomainEvent) error
}
