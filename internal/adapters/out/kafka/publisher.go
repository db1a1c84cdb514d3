// Package kafka publishes domain events to a Kafka topic. Events are wrapped
// in a JSON envelope carrying an event ID, type and timestamp, keyed by the
// aggregate's business number so consumers see per-aggregate ordering.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"plasmashipping/internal/core/domain/events"
	"plasmashipping/internal/pkg/errs"

	"github.com/google/uuid"
	skafka "github.com/segmentio/kafka-go"
)

// Writer defines the subset of the segmentio kafka.Writer used by the
// publisher. This makes the publisher testable.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// envelope is the wire format of a published domain event.
type envelope struct {
	EventID    string             `json:"eventId"`
	EventType  string             `json:"eventType"`
	OccurredAt time.Time          `json:"occurredAt"`
	Payload    events.DomainEvent `json:"payload"`
}

// Publisher implements ports.EventPublisher on top of a kafka writer.
type Publisher struct {
	writer Writer
}

// NewPublisher creates a publisher that writes to the provided broker and
// topic.
func NewPublisher(brokerURL, topic string) (*Publisher, error) {
	if brokerURL == "" {
		return nil, errs.NewValueIsRequiredError("brokerURL")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	w := &skafka.Writer{
		Addr:         skafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &skafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
	}
	return &Publisher{writer: w}, nil
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

// Publish marshals the event envelope to JSON and writes a kafka message
// keyed by the aggregate's business number.
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	value, err := json.Marshal(envelope{
		EventID:    uuid.NewString(),
		EventType:  event.EventType(),
		OccurredAt: time.Now().UTC(),
		Payload:    event,
	})
	if err != nil {
		return err
	}

	msg := skafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
