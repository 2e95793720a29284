package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotvista/plotvista/internal/models"
)

func TestMintAndVerify(t *testing.T) {
	svc := New("test-secret")
	ident := models.Identity{ID: "u1", Email: "owner@example.com", Role: models.RoleOwner}

	signed, err := svc.Mint(ident)
	require.NoError(t, err)

	got := svc.Verify(signed)
	require.NotNil(t, got, "freshly minted token must verify")
	assert.Equal(t, ident.ID, got.ID)
	assert.Equal(t, ident.Email, got.Email)
	assert.Equal(t, ident.Role, got.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := New("secret-a").Mint(models.Identity{ID: "u1"})
	require.NoError(t, err)

	assert.Nil(t, New("secret-b").Verify(signed), "token signed with another secret must not verify")
}

func TestVerify_Garbage(t *testing.T) {
	svc := New("test-secret")
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		assert.Nil(t, svc.Verify(tok), "Verify(%q)", tok)
	}
}

func TestVerify_Expired(t *testing.T) {
	secret := "test-secret"
	claims := Claims{
		ID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * TTL)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-TTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	assert.Nil(t, New(secret).Verify(signed), "expired token must not verify")
}

func TestVerify_RejectsUnsignedAlgorithm(t *testing.T) {
	claims := Claims{
		ID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Nil(t, New("test-secret").Verify(signed), "alg=none token must not verify")
}
