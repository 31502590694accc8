// Package kafka publishes domain events to a Kafka topic. The review
// notification consumer on the other side of the topic is a separate
// service; this adapter only guarantees at-least-once delivery of the
// committed event.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/IBM/sarama"
)

// NewSyncProducer creates a synchronous Kafka producer with full-ack
// delivery semantics.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return producer, nil
}

// EventPublisher sends order domain events to a Kafka topic, keyed by order
// ID so events for the same order stay ordered within a partition.
type EventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewEventPublisher creates a publisher writing to the given topic.
func NewEventPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_event_publisher"),
	}
}

var _ ports.EventPublisher = (*EventPublisher)(nil)

// orderReviewedMessage is the wire representation of an OrderReviewedEvent.
type orderReviewedMessage struct {
	Event      string    `json:"event"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// Publish serializes the event and sends it synchronously. Returns an error
// when the event type is unknown or the broker rejects the message.
func (p *EventPublisher) Publish(ctx context.Context, event order.DomainEvent) error {
	payload, key, err := encodeEvent(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send %s event: %w", event.EventName(), err)
	}

	p.logger.InfoContext(ctx, "event published",
		"event", event.EventName(),
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close shuts down the underlying producer, flushing buffered messages.
func (p *EventPublisher) Close() error {
	return p.producer.Close()
}

func encodeEvent(event order.DomainEvent) ([]byte, string, error) {
	switch e := event.(type) {
	case order.OrderReviewedEvent:
		payload, err := json.Marshal(orderReviewedMessage{
			Event:      e.EventName(),
			OrderID:    e.OrderID.String(),
			UserID:     e.UserID.String(),
			ReviewedAt: e.ReviewedAt,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal %s event: %w", e.EventName(), err)
		}
		return payload, e.OrderID.String(), nil
	default:
		return nil, "", fmt.Errorf("unknown domain event %q", event.EventName())
	}
}
