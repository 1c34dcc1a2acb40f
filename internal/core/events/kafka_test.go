package events

import (
	"context"
	"testing"
)

func TestNewKafkaNotifier_NoBrokers(t *testing.T) {
	_, err := NewKafkaNotifier(context.Background(), nil, "posts_events")
	if err == nil {
		t.Fatal("expected an error with no brokers configured")
	}
}

func TestKafkaNotifier_UnserializablePayload(t *testing.T) {
	// Serialization happens before any broker I/O, so a nil writer is safe here
	n := &KafkaNotifier{}
	if err := n.Emit(context.Background(), PostCreated, make(chan int)); err == nil {
		t.Fatal("expected a serialization error")
	}
}
