package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/service"
	"github.com/plotvista/plotvista/internal/validation"
)

// ContactService defines the pipeline operations required by the
// contact handlers.
type ContactService interface {
	Create(ctx context.Context, in validation.ContactInput) (string, error)
	Update(ctx context.Context, id string, in validation.ContactInput) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Contact, error)
	Get(ctx context.Context, id string) (models.Contact, error)
}

// ContactHandler handles the owner dashboard's contact CRUD.
type ContactHandler struct {
	ContactService ContactService
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.ContactService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// Get handles GET /api/contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.ContactService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: service.MsgInvalidInput})
		return
	}
	id, err := h.ContactService.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, State{Success: true, Message: service.MsgContactCreated, ID: id})
}

// Update handles PUT /api/contacts/{id}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in validation.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: service.MsgInvalidInput})
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.ContactService.Update(r.Context(), id, in); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true, Message: service.MsgContactUpdated, ID: id})
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContactService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true, Message: service.MsgContactDeleted})
}
