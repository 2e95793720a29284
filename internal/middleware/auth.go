// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/plotvista/plotvista/internal/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

// TokenVerifier validates a bearer token back into an identity, or nil.
type TokenVerifier interface {
	Verify(token string) *models.Identity
}

// BearerAuth enforces bearer-token authentication.
//
// It extracts the token from the Authorization header, verifies it, and
// stores the resulting identity in the request context so it can be
// used downstream as the authenticated user.
func BearerAuth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			identity := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if identity == nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireOwner rejects requests whose authenticated identity is not the
// Owner role. It must run after BearerAuth.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentityFromContext(r.Context())
		if identity == nil || identity.Role != models.RoleOwner {
			http.Error(w, "owner access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentityFromContext extracts the authenticated identity from the
// request context. Returns nil if not present.
func GetIdentityFromContext(ctx context.Context) *models.Identity {
	val := ctx.Value(identityKey)
	if id, ok := val.(*models.Identity); ok {
		return id
	}
	return nil
}
