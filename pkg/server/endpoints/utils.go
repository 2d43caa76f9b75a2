package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/workdeck/workdeck/pkg/identity"
	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
	"github.com/workdeck/workdeck/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithStoreError maps store errors onto HTTP status codes.
func respondWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, store.ErrInvalidPermissionForScope):
		respondWithError(w, http.StatusBadRequest, "Permission is not valid for this scope")
	default:
		respondWithError(w, http.StatusInternalServerError, "Operation failed")
	}
}

// pathID extracts a numeric path variable.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id, err == nil
}

// currentPrincipal returns the authenticated principal from the request
// context. The token middleware guarantees it is set on protected routes.
func currentPrincipal(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := identity.Get(r.Context())
	if !ok || id.Principal == "" {
		respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
		return "", false
	}
	return id.Principal, true
}

// requireAccess runs a permission check and writes the error response if the
// principal is not allowed. Returns true when the request may proceed.
func requireAccess(s *server.Server, w http.ResponseWriter, principal string, ref model.Ref, permission model.Permission) bool {
	allowed, err := s.Access.Check(principal, ref, permission)
	if err != nil {
		respondWithStoreError(w, err)
		return false
	}
	if !allowed {
		respondWithError(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
