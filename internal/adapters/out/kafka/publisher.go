// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after successful commits; delivery is best-effort and
// failures never roll back the originating transaction.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"logistics/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher writes order events to a single Kafka topic, keyed by
// order code so events for one order stay in partition order.
type OrderEventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher writing to the given brokers
// and topic.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger.With("component", "kafka_publisher"),
	}
}

// Publish writes the event as a JSON message. Errors are logged and
// returned; callers on the command path ignore them.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to encode order event", "error", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderCode),
		Value: payload,
		Time:  event.OccurredAt,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish order event",
			"event_type", event.EventType, "order_code", event.OrderCode, "error", err)
		return err
	}

	return nil
}

// Close flushes pending messages and releases the writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopOrderEventPublisher discards events. Used when no broker is configured.
type NoopOrderEventPublisher struct{}

// NewNoopOrderEventPublisher creates a publisher that drops all events.
func NewNoopOrderEventPublisher() NoopOrderEventPublisher {
	return NoopOrderEventPublisher{}
}

// Publish discards the event.
func (NoopOrderEventPublisher) Publish(_ context.Context, _ ports.OrderEvent) error {
	return nil
}
