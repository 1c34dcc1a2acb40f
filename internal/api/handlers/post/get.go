package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"postsvc/internal/api/handlers/common"
	"postsvc/internal/core/posts"
)

// GetHandler handles fetching a single post by id
type GetHandler struct {
	service    posts.Service
	translator *common.ErrorTranslator
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service, translator *common.ErrorTranslator) *GetHandler {
	return &GetHandler{
		service:    service,
		translator: translator,
	}
}

// HandleGet handles GET /posts/{id}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.translator.HandleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(found); err != nil {
		log.Printf("Failed to encode post response: %v", err)
	}
}
