package commands

import (
	"context"
	"log/slog"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/core/ports"
)

// publishEvent sends a lifecycle event after the transaction committed.
// Broker failures are logged, not returned.
func publishEvent(ctx context.Context, publisher ports.EventPublisher, event events.DomainEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("publishing event failed",
			"eventType", event.EventType(),
			"key", event.Key(),
			"error", err,
		)
	}
}
