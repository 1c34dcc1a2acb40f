package post

import (
	"encoding/json"
	"log"
	"net/http"

	"postsvc/internal/api/handlers/common"
	"postsvc/internal/core/posts"
)

// ListHandler handles listing all posts
type ListHandler struct {
	service    posts.Service
	translator *common.ErrorTranslator
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service, translator *common.ErrorTranslator) *ListHandler {
	return &ListHandler{
		service:    service,
		translator: translator,
	}
}

// HandleList handles GET /posts
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.GetAll(r.Context())
	if err != nil {
		h.translator.HandleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(all); err != nil {
		log.Printf("Failed to encode post list response: %v", err)
	}
}
