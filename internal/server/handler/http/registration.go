package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/service"
	"github.com/plotvista/plotvista/internal/validation"
)

// RegistrationService defines the pipeline operations required by the
// registration handlers.
type RegistrationService interface {
	Create(ctx context.Context, in validation.RegistrationInput) (models.Registration, error)
	MarkAllRead(ctx context.Context) error
	List(ctx context.Context) ([]models.Registration, error)
	NewCount(ctx context.Context) (int, error)
}

// RegistrationHandler handles the public registration form and the
// dashboard's registration views.
type RegistrationHandler struct {
	RegistrationService RegistrationService
}

// CreateRegistrationResponse extends State with the created record,
// which the registration form renders back to the visitor.
type CreateRegistrationResponse struct {
	State
	Registration models.Registration `json:"registration"`
}

// Create handles POST /api/registrations.
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: service.MsgInvalidInput})
		return
	}
	reg, err := h.RegistrationService.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateRegistrationResponse{
		State:        State{Success: true, Message: service.MsgRegistrationSubmitted, ID: reg.ID},
		Registration: reg,
	})
}

// List handles GET /api/registrations.
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.RegistrationService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if registrations == nil {
		registrations = []models.Registration{}
	}
	writeJSON(w, http.StatusOK, registrations)
}

// NewCount handles GET /api/registrations/new-count.
func (h *RegistrationHandler) NewCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.RegistrationService.NewCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// MarkRead handles POST /api/registrations/mark-read. The operation is
// idempotent.
func (h *RegistrationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.RegistrationService.MarkAllRead(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true})
}
