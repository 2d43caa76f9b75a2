package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck/pkg/identity"
)

var testSigningKey = []byte("test-signing-key")

func authedHandler(t *testing.T, wantPrincipal string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantPrincipal, id.Principal)
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareValidToken(t *testing.T) {
	auth := NewTokenAuthenticator(testSigningKey)

	token, err := identity.NewToken(testSigningKey, "alice", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	auth.Middleware(authedHandler(t, "alice")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareMissingHeader(t *testing.T) {
	auth := NewTokenAuthenticator(testSigningKey)

	req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
	rec := httptest.NewRecorder()

	auth.Middleware(authedHandler(t, "")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization missing")
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	auth := NewTokenAuthenticator(testSigningKey)

	for _, header := range []string{"Bearer", "Bearer ", "Token abc", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		auth.Middleware(authedHandler(t, "")).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	auth := NewTokenAuthenticator(testSigningKey)

	token, err := identity.NewToken(testSigningKey, "alice", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	auth.Middleware(authedHandler(t, "alice")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareWrongKey(t *testing.T) {
	auth := NewTokenAuthenticator(testSigningKey)

	token, err := identity.NewToken([]byte("some-other-key"), "alice", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/workspaces", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	auth.Middleware(authedHandler(t, "alice")).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
