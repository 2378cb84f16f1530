package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FuFicFac/vibe-writer/internal/domain"
	"github.com/FuFicFac/vibe-writer/internal/domain/models"
)

func newTestVerifier(t *testing.T) (JWTVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	kf := func(token *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}
	return NewStaticVerifier(kf, slog.New(slog.NewTextHandler(io.Discard, nil))), key
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims *models.SupabaseClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func claimsFor(subject, role string, expires time.Time) *models.SupabaseClaims {
	return &models.SupabaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Role: role,
	}
}

func TestVerifyToken(t *testing.T) {
	verifier, key := newTestVerifier(t)
	future := time.Now().Add(time.Hour)

	claims, err := verifier.VerifyToken(sign(t, jwt.SigningMethodRS256, key, claimsFor("user-1", "authenticated", future)))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.GetUserID())
}

func TestVerifyToken_Rejected(t *testing.T) {
	verifier, key := newTestVerifier(t)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: sign(t, jwt.SigningMethodRS256, key, claimsFor("user-1", "authenticated", time.Now().Add(-time.Hour)))},
		{name: "wrong key", token: sign(t, jwt.SigningMethodRS256, otherKey, claimsFor("user-1", "authenticated", future))},
		{name: "hmac algorithm", token: sign(t, jwt.SigningMethodHS256, []byte("secret"), claimsFor("user-1", "authenticated", future))},
		{name: "anonymous role", token: sign(t, jwt.SigningMethodRS256, key, claimsFor("user-1", "anon", future))},
		{name: "missing subject", token: sign(t, jwt.SigningMethodRS256, key, claimsFor("", "authenticated", future))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyToken(tt.token)
			assert.True(t, errors.Is(err, domain.ErrUnauthorized), "got %v", err)
		})
	}
}

func TestNewJWTVerifier_EmptyURL(t *testing.T) {
	_, err := NewJWTVerifier("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
