package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postsvc/internal/core/posts"
)

type stubNotifier struct {
	emitted []string
	err     error
}

func (n *stubNotifier) Emit(ctx context.Context, name string, payload interface{}) error {
	n.emitted = append(n.emitted, name)
	return n.err
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid id", posts.ErrInvalidID, http.StatusBadRequest, "Invalid ID format"},
		{"not found", posts.ErrNotFound, http.StatusNotFound, "Post not found"},
		{"wrapped not found", fmt.Errorf("loading: %w", posts.ErrNotFound), http.StatusNotFound, "Post not found"},
		{"conflict", posts.ErrDuplicateTitle, http.StatusBadRequest, "A post with the same title already exists"},
		{"unrecognized", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &stubNotifier{}
			translator := NewErrorTranslator(notifier)

			rec := httptest.NewRecorder()
			translator.HandleServiceError(context.Background(), rec, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, ErrorResponse{
				Message: tt.wantMessage,
				Status:  tt.wantStatus,
				Service: ServiceName,
			}, body)

			assert.Equal(t, []string{"error"}, notifier.emitted,
				"exactly one error event per translated error")
		})
	}
}

func TestWriteError_NotifierFailureDoesNotBlockResponse(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("broker down")}
	translator := NewErrorTranslator(notifier)

	rec := httptest.NewRecorder()
	translator.WriteError(context.Background(), rec, http.StatusNotFound, "Post not found")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Post not found", body.Message)
}
