package post

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"postsvc/internal/api/handlers/common"
	"postsvc/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service    posts.Service
	translator *common.ErrorTranslator
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service, translator *common.ErrorTranslator) *DeleteHandler {
	return &DeleteHandler{
		service:    service,
		translator: translator,
	}
}

// HandleDelete handles DELETE /posts/{id}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.translator.HandleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	response := map[string]string{
		"message": fmt.Sprintf("Post with id %s deleted successfully", id),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode post deletion response: %v", err)
	}
}
