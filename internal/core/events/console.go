package events

import (
	"context"
	"encoding/json"
	"log"
)

// ConsoleNotifier writes events to the process log. It never fails and
// needs no teardown; the zero value is ready to use.
type ConsoleNotifier struct{}

// NewConsoleNotifier creates a console-backed notifier
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

// Emit logs the event name and payload synchronously
func (n *ConsoleNotifier) Emit(_ context.Context, name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		// Still log the event name; an unmarshalable payload shouldn't
		// suppress the emission entirely
		log.Printf("Event Emitted: %s (payload not serializable: %v)", name, err)
		return nil
	}
	log.Printf("Event Emitted: %s %s", name, data)
	return nil
}
