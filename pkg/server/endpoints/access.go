package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
)

// GrantResponse represents a stored grant in the API response
type GrantResponse struct {
	Scope       model.Scope      `json:"scope"`
	ResourceID  int64            `json:"resource_id"`
	PrincipalID string           `json:"principal_id"`
	Permission  model.Permission `json:"permission"`
	CreatedAt   string           `json:"created_at,omitempty"`
	UpdatedAt   string           `json:"updated_at,omitempty"`
}

// UserAccessResponse is one entry in an access listing
type UserAccessResponse struct {
	PrincipalID string             `json:"principal_id"`
	Name        string             `json:"name,omitempty"`
	Email       string             `json:"email,omitempty"`
	IsOwner     bool               `json:"is_owner"`
	Permissions []model.Permission `json:"permissions"`
}

type grantRequest struct {
	PrincipalID string `json:"principal_id"`
	Permission  string `json:"permission"`
}

type batchGrantRequest struct {
	Grants []grantRequest `json:"grants"`
}

// RegisterAccessEndpoints registers grant management and access listing
// endpoints for both tiers.
//
// Managing workspace grants requires MANAGE_USERS and listing requires
// VIEW_USERS; those permissions exist at workspace scope only. Collection
// grants are managed with EDIT and listed with VIEW on the collection.
func RegisterAccessEndpoints(s *server.Server) {
	workspacesRouter := s.Router.PathPrefix("/workspaces/{id:[0-9]+}").Subrouter()
	workspacesRouter.Use(s.TokenAuth.Middleware)

	workspacesRouter.HandleFunc("/access", handleGrant(s, model.ScopeWorkspace, model.PermissionManageUsers)).Methods("POST")
	workspacesRouter.HandleFunc("/access/batch", handleBatchGrant(s)).Methods("POST")
	workspacesRouter.HandleFunc("/access", handleRevoke(s, model.ScopeWorkspace, model.PermissionManageUsers)).Methods("DELETE")
	workspacesRouter.HandleFunc("/users", handleUsersWithAccess(s, model.ScopeWorkspace, model.PermissionViewUsers)).Methods("GET")
	workspacesRouter.HandleFunc("/permissions", handleMyPermissions(s, model.ScopeWorkspace)).Methods("GET")

	collectionsRouter := s.Router.PathPrefix("/collections/{id:[0-9]+}").Subrouter()
	collectionsRouter.Use(s.TokenAuth.Middleware)

	collectionsRouter.HandleFunc("/access", handleGrant(s, model.ScopeCollection, model.PermissionEdit)).Methods("POST")
	collectionsRouter.HandleFunc("/access", handleRevoke(s, model.ScopeCollection, model.PermissionEdit)).Methods("DELETE")
	collectionsRouter.HandleFunc("/users", handleUsersWithAccess(s, model.ScopeCollection, model.PermissionView)).Methods("GET")
	collectionsRouter.HandleFunc("/permissions", handleMyPermissions(s, model.ScopeCollection)).Methods("GET")
}

func grantResponse(g *model.Grant) GrantResponse {
	return GrantResponse{
		Scope:       g.Scope,
		ResourceID:  g.ResourceID,
		PrincipalID: g.PrincipalID,
		Permission:  g.Permission,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   g.UpdatedAt.Format(time.RFC3339),
	}
}

func parseGrantRequest(w http.ResponseWriter, req grantRequest) (string, model.Permission, bool) {
	if req.PrincipalID == "" {
		respondWithError(w, http.StatusBadRequest, "principal_id is required")
		return "", 0, false
	}
	permission, err := model.PermissionString(req.Permission)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "unknown permission: "+req.Permission)
		return "", 0, false
	}
	return req.PrincipalID, permission, true
}

func handleGrant(s *server.Server, scope model.Scope, required model.Permission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid resource id")
			return
		}
		ref := model.Ref{Scope: scope, ID: id}

		var req grantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		grantee, permission, ok := parseGrantRequest(w, req)
		if !ok {
			return
		}

		if !requireAccess(s, w, principal, ref, required) {
			return
		}

		grant, err := s.Access.Grant(ref, grantee, permission)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, grantResponse(grant))
	}
}

// handleBatchGrant applies several workspace grants in one request. Grants
// are applied in order and the first failure stops the batch; grants applied
// before the failure stay applied, and the upsert makes retrying the whole
// batch safe.
func handleBatchGrant(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid resource id")
			return
		}
		ref := model.WorkspaceRef(id)

		var req batchGrantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Grants) == 0 {
			respondWithError(w, http.StatusBadRequest, "grants are required")
			return
		}

		if !requireAccess(s, w, principal, ref, model.PermissionManageUsers) {
			return
		}

		response := make([]GrantResponse, 0, len(req.Grants))
		for _, entry := range req.Grants {
			grantee, permission, ok := parseGrantRequest(w, entry)
			if !ok {
				return
			}
			grant, err := s.Access.Grant(ref, grantee, permission)
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			response = append(response, grantResponse(grant))
		}
		respondWithJSON(w, http.StatusCreated, response)
	}
}

func handleRevoke(s *server.Server, scope model.Scope, required model.Permission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid resource id")
			return
		}
		ref := model.Ref{Scope: scope, ID: id}

		var req grantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		grantee, permission, ok := parseGrantRequest(w, req)
		if !ok {
			return
		}

		if !requireAccess(s, w, principal, ref, required) {
			return
		}

		grant, err := s.Access.Revoke(ref, grantee, permission)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if grant == nil {
			// Revoking an absent grant is a no-op, not an error.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondWithJSON(w, http.StatusOK, grantResponse(grant))
	}
}

// handleMyPermissions reports which permissions the requesting principal
// holds on the resource. It needs no permission itself: a principal with no
// access simply gets an empty set.
func handleMyPermissions(s *server.Server, scope model.Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid resource id")
			return
		}
		ref := model.Ref{Scope: scope, ID: id}

		valid := model.PermissionsForScope(scope)
		permissions := make([]model.Permission, 0, len(valid))
		for _, permission := range valid {
			allowed, err := s.Access.Check(principal, ref, permission)
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			if allowed {
				permissions = append(permissions, permission)
			}
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"principal_id": principal,
			"permissions":  permissions,
		})
	}
}

func handleUsersWithAccess(s *server.Server, scope model.Scope, required model.Permission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid resource id")
			return
		}
		ref := model.Ref{Scope: scope, ID: id}

		if !requireAccess(s, w, principal, ref, required) {
			return
		}

		users, err := s.Access.UsersWithAccess(ref)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]UserAccessResponse, 0, len(users))
		for _, user := range users {
			entry := UserAccessResponse{
				PrincipalID: user.PrincipalID,
				Name:        user.Name,
				Email:       user.Email,
				IsOwner:     user.IsOwner,
				Permissions: user.Permissions,
			}
			if entry.Permissions == nil {
				entry.Permissions = []model.Permission{}
			}
			response = append(response, entry)
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}
