package events

import "context"

// Event names published by the posts service
const (
	PostCreated = "post_created"
	PostUpdated = "post_updated"
	PostDeleted = "post_deleted"
	Error       = "error"
)

// Notifier publishes named domain events to a configured sink.
// The concrete variant (console or Kafka) is chosen once at startup and
// injected into whatever needs to emit; nothing reads provider state
// after initialization.
type Notifier interface {
	// Emit publishes one event. Payload must be JSON-serializable.
	Emit(ctx context.Context, name string, payload interface{}) error
}
