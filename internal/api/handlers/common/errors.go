package common

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"postsvc/internal/core/events"
	"postsvc/internal/core/posts"
)

// ServiceName tags every error body this service produces
const ServiceName = "posts"

// ErrorResponse is the uniform error body returned on any failure
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Service string `json:"service"`
}

// ErrorTranslator converts any error raised at the HTTP boundary into the
// uniform error body and reports it through the event notifier. Reporting is
// best-effort: a notifier failure is logged and never delays or blocks the
// error response reaching the caller.
type ErrorTranslator struct {
	notifier events.Notifier
}

// NewErrorTranslator creates an error translator backed by notifier
func NewErrorTranslator(notifier events.Notifier) *ErrorTranslator {
	return &ErrorTranslator{notifier: notifier}
}

// WriteError emits one error event and writes the uniform error body
func (t *ErrorTranslator) WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	body := ErrorResponse{
		Message: message,
		Status:  status,
		Service: ServiceName,
	}

	if err := t.notifier.Emit(ctx, events.Error, body); err != nil {
		log.Printf("Failed to emit error event: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// HandleServiceError maps domain errors to HTTP responses
func (t *ErrorTranslator) HandleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case posts.IsInvalidID(err):
		t.WriteError(ctx, w, http.StatusBadRequest, "Invalid ID format")

	case posts.IsNotFound(err):
		t.WriteError(ctx, w, http.StatusNotFound, "Post not found")

	case posts.IsConflict(err):
		t.WriteError(ctx, w, http.StatusBadRequest, "A post with the same title already exists")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		t.WriteError(ctx, w, http.StatusInternalServerError, "Internal server error")
	}
}
