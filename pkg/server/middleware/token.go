package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/workdeck/workdeck/pkg/identity"
)

// TokenAuthenticator is middleware that validates bearer access tokens
type TokenAuthenticator struct {
	signingKey []byte
}

// NewTokenAuthenticator creates a new token authenticator middleware
func NewTokenAuthenticator(signingKey []byte) *TokenAuthenticator {
	return &TokenAuthenticator{signingKey: signingKey}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// stores the authenticated identity on the request context.
func (t *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		id, err := identity.ParseToken(t.signingKey, tokenString)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid or expired token"))
			return
		}

		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			id.WithRemoteIP(net.ParseIP(host))
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}
