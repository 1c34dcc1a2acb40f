package post

import (
	"encoding/json"
	"log"
	"net/http"

	"postsvc/internal/api/handlers/common"
	"postsvc/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service    posts.Service
	translator *common.ErrorTranslator
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service, translator *common.ErrorTranslator) *CreateHandler {
	return &CreateHandler{
		service:    service,
		translator: translator,
	}
}

// HandleCreate handles POST /posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to prevent abuse; 1MB is plenty for post content
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.translator.WriteError(r.Context(), w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		h.translator.WriteError(r.Context(), w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.translator.HandleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		// Headers already sent; nothing left to do but log
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
