package events

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
)

func TestConsoleNotifier_Emit(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	n := NewConsoleNotifier()
	err := n.Emit(context.Background(), PostCreated, map[string]string{
		"id":    "abc",
		"title": "Hello",
	})
	if err != nil {
		t.Fatalf("console notifier must never fail, got %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Event Emitted: post_created") {
		t.Errorf("log output missing event name: %q", out)
	}
	if !strings.Contains(out, `"title":"Hello"`) {
		t.Errorf("log output missing payload: %q", out)
	}
}

func TestConsoleNotifier_UnserializablePayload(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	n := NewConsoleNotifier()
	if err := n.Emit(context.Background(), Error, make(chan int)); err != nil {
		t.Fatalf("console notifier must never fail, got %v", err)
	}

	if !strings.Contains(buf.String(), "Event Emitted: error") {
		t.Errorf("event name must still be logged: %q", buf.String())
	}
}
