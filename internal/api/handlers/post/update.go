package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"postsvc/internal/api/handlers/common"
	"postsvc/internal/core/posts"
)

// UpdateHandler handles partial post updates
type UpdateHandler struct {
	service    posts.Service
	translator *common.ErrorTranslator
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service, translator *common.ErrorTranslator) *UpdateHandler {
	return &UpdateHandler{
		service:    service,
		translator: translator,
	}
}

// HandleUpdate handles PUT /posts/{id}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.translator.WriteError(r.Context(), w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		h.translator.WriteError(r.Context(), w, http.StatusBadRequest, validationMessage(err))
		return
	}

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.translator.HandleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		log.Printf("Failed to encode post update response: %v", err)
	}
}
