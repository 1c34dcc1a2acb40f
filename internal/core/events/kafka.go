package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes events as keyed messages to a Kafka topic:
// key = event name, value = JSON-serialized payload.
type KafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier connects to the broker and prepares a producer for topic.
// The dial happens eagerly so a misconfigured or unreachable broker fails
// process startup instead of silently dropping every event later.
func NewKafkaNotifier(ctx context.Context, brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka notifier: no brokers configured")
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(dialCtx, "tcp", brokers[0])
	if err != nil {
		return nil, fmt.Errorf("kafka notifier: failed to connect to broker %s: %w", brokers[0], err)
	}
	if err := conn.Close(); err != nil {
		return nil, fmt.Errorf("kafka notifier: failed to close probe connection: %w", err)
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}

	return &KafkaNotifier{writer: writer}, nil
}

// Emit publishes one keyed message to the configured topic
func (n *KafkaNotifier) Emit(ctx context.Context, name string, payload interface{}) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize %s payload: %w", name, err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(name),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", name, err)
	}

	return nil
}

// Close flushes and releases the producer
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
