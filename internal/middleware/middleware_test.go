package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/FuFicFac/vibe-writer/internal/domain"
	"github.com/FuFicFac/vibe-writer/internal/domain/models"
	"github.com/FuFicFac/vibe-writer/internal/httputil"
)

type fakeVerifier struct {
	tokens map[string]string // token -> user ID
}

func (f *fakeVerifier) VerifyToken(token string) (*models.SupabaseClaims, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	claims := &models.SupabaseClaims{Role: "authenticated"}
	claims.Subject = userID
	return claims, nil
}

func (f *fakeVerifier) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// echoUser writes the authenticated user ID as the body
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, httputil.GetUserID(r))
})

func TestAuth(t *testing.T) {
	verifier := &fakeVerifier{tokens: map[string]string{"good": "user-1"}}

	tests := []struct {
		name       string
		devUserID  string
		path       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "valid token", path: "/api/profiles", header: "Bearer good", wantStatus: http.StatusOK, wantUser: "user-1"},
		{name: "invalid token", path: "/api/profiles", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", path: "/api/profiles", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "missing header", path: "/api/profiles", wantStatus: http.StatusUnauthorized},
		{name: "dev user without header", devUserID: "dev", path: "/api/profiles", wantStatus: http.StatusOK, wantUser: "dev"},
		{name: "dev mode still verifies tokens", devUserID: "dev", path: "/api/profiles", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "health is public", path: "/health", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(verifier, tt.devUserID, discardLogger())(echoUser).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUser, rec.Body.String())
			} else {
				assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	Recovery(discardLogger())(panicky).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetRequestID(r)
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequestID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		rec := httptest.NewRecorder()
		RequestID(next).ServeHTTP(rec, req)

		assert.Equal(t, id, seen)
	})

	t.Run("invalid replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		RequestID(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "<script>", seen)
	})
}
