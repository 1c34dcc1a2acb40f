package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postsvc/internal/api/handlers/common"
)

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Emit(ctx context.Context, name string, payload interface{}) error {
	n.events = append(n.events, name)
	return nil
}

func TestRecoverer(t *testing.T) {
	notifier := &recordingNotifier{}
	translator := common.NewErrorTranslator(notifier)

	handler := Recoverer(translator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body common.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, common.ErrorResponse{
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
		Service: "posts",
	}, body)

	assert.Equal(t, []string{"error"}, notifier.events)
}

func TestRecoverer_PassThrough(t *testing.T) {
	notifier := &recordingNotifier{}
	translator := common.NewErrorTranslator(notifier)

	handler := Recoverer(translator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, notifier.events)
}
