package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/plotvista/plotvista/internal/apperr"
	"github.com/plotvista/plotvista/internal/middleware"
	"github.com/plotvista/plotvista/internal/models"
	"github.com/plotvista/plotvista/internal/service"
)

// AuthService defines the authentication operations required by the
// auth handlers.
type AuthService interface {
	// Authenticate verifies an email/password pair and returns the
	// minimal identity. Failures are generic: the caller cannot tell
	// whether the email exists.
	Authenticate(ctx context.Context, email, password string) (models.Identity, error)
	// ChangePassword is the self-service flow; the current password
	// must verify before the new one is accepted.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// TokenMinter mints a signed, time-limited token for an identity.
type TokenMinter interface {
	Mint(id models.Identity) (string, error)
}

// AuthHandler handles login and self-service password change.
type AuthHandler struct {
	AuthService AuthService
	Tokens      TokenMinter
}

// LoginRequest is the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the identity it is for.
type LoginResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	User    models.Identity `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: "Email and password are required."})
		return
	}

	identity, err := h.AuthService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.Tokens.Mint(identity)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, State{Success: false, Message: apperr.MsgInternal})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token, User: identity})
}

// ChangePasswordRequest is the JSON payload for the self-service
// password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles POST /api/auth/change-password for the
// authenticated user.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity == nil {
		writeJSON(w, http.StatusUnauthorized, State{Success: false, Message: "authentication required"})
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, State{Success: false, Message: service.MsgInvalidInput})
		return
	}

	if err := h.AuthService.ChangePassword(r.Context(), identity.ID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, State{Success: true, Message: service.MsgPasswordChanged})
}
