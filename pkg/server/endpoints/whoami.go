package endpoints

import (
	"net/http"
	"time"

	"github.com/workdeck/workdeck/pkg/identity"
	"github.com/workdeck/workdeck/pkg/server"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	Principal string `json:"principal"`
	TokenIAT  int64  `json:"token_iat,omitempty"`
	TokenExp  int64  `json:"token_exp,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.TokenAuth.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok || id.Principal == "" {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		response := WhoamiResponse{Principal: id.Principal}
		if !id.IssuedAt.IsZero() {
			response.TokenIAT = id.IssuedAt.Unix()
		}
		if !id.ExpiresAt.IsZero() {
			response.TokenExp = id.ExpiresAt.Truncate(time.Second).Unix()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
