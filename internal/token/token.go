// Package token mints and verifies the signed, time-limited bearer
// tokens that carry an authenticated identity.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plotvista/plotvista/internal/models"
)

// TTL is the fixed token lifetime.
const TTL = 7 * 24 * time.Hour

// Claims is the JWT payload: the minimal identity plus the registered
// expiry fields.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a shared HS256 secret.
type Service struct {
	secret []byte
}

// New returns a Service signing with the given secret.
func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Mint returns a signed token for the identity, expiring after TTL.
func (s *Service) Mint(id models.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    id.ID,
		Email: id.Email,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a bearer token and returns the identity it carries,
// or nil for any invalid, expired, or tampered token.
func (s *Service) Verify(tokenString string) *models.Identity {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil
	}
	return &models.Identity{ID: claims.ID, Email: claims.Email, Role: claims.Role}
}
