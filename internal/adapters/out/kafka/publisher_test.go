package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"plasmashipping/internal/adapters/out/kafka"
	"plasmashipping/internal/core/domain/events"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records messages written and optionally fails.
type fakeWriter struct {
	msgs []skafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestNewPublisher(t *testing.T) {
	t.Run("should require broker and topic", func(t *testing.T) {
		_, err := kafka.NewPublisher("", "shipment-events")
		require.Error(t, err)

		_, err = kafka.NewPublisher("localhost:9092", "")
		require.Error(t, err)
	})
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("should wrap event in an envelope keyed by shipment number", func(t *testing.T) {
		fw := &fakeWriter{}
		p := kafka.NewPublisherWithWriter(fw)

		event := events.ShipmentCreated{
			ShipmentID:     42,
			ShipmentNumber: "BPMMH142",
			LocationCode:   "MH1",
			CustomerCode:   "408",
			ProductType:    "RP_FROZEN",
			ShipmentDate:   time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			EmployeeID:     "emp-001",
		}

		err := p.Publish(context.Background(), event)

		require.NoError(t, err)
		require.Len(t, fw.msgs, 1)
		assert.Equal(t, "BPMMH142", string(fw.msgs[0].Key))

		var decoded struct {
			EventID   string                 `json:"eventId"`
			EventType string                 `json:"eventType"`
			Payload   events.ShipmentCreated `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &decoded))
		assert.NotEmpty(t, decoded.EventID)
		assert.Equal(t, events.TypeShipmentCreated, decoded.EventType)
		assert.Equal(t, event, decoded.Payload)
	})

	t.Run("should surface writer failures", func(t *testing.T) {
		fw := &fakeWriter{err: errors.New("broker unreachable")}
		p := kafka.NewPublisherWithWriter(fw)

		err := p.Publish(context.Background(), events.CartonClosed{CartonNumber: "BPMMH17"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker unreachable")
	})
}
