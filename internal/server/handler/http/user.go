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

// UserService defines the pipeline operations required by the user
// handlers.
type UserService interface {
	Create(ctx context.Context, in validation.UserInput) (string, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.User, error)
	// SetPassword sets a user's password from the dashboard; refused
	// for the Owner account.
	SetPassword(ctx context.Context, userID, newPassword string) error
}

// UserHandler handles the owner dashboard's user management.
type UserHandler struct {
	UserService UserService
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: service.MsgInvalidInput})
		return
	}
	id, err := h.UserService.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, State{Success: true, Message: service.MsgUserCreated, ID: id})
}

// Delete handles DELETE /api/users/{id}. Deleting the Owner succeeds
// without removing anything.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true, Message: service.MsgUserDeleted})
}

// SetPasswordRequest is the JSON payload for the dashboard password
// set.
type SetPasswordRequest struct {
	Password string `json:"password"`
}

// SetPassword handles POST /api/users/{id}/password.
func (h *UserHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req SetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: service.MsgInvalidInput})
		return
	}
	if err := h.UserService.SetPassword(r.Context(), chi.URLParam(r, "id"), req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true, Message: service.MsgPasswordChanged})
}
