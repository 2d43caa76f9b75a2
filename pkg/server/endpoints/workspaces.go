package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// WorkspaceResponse represents a workspace in the API response
type WorkspaceResponse struct {
	ID        int64  `json:"id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// TreeCollectionResponse is a collection entry in the tree response
type TreeCollectionResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// TreeWorkspaceResponse is a workspace entry in the tree response,
// annotated with the requesting principal's permissions
type TreeWorkspaceResponse struct {
	ID          int64                    `json:"id"`
	OwnerID     string                   `json:"owner_id"`
	Name        string                   `json:"name"`
	Kind        string                   `json:"kind"`
	Permissions []model.Permission       `json:"permissions"`
	Collections []TreeCollectionResponse `json:"collections"`
}

type workspaceRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// RegisterWorkspacesEndpoints registers the workspaces API endpoints
func RegisterWorkspacesEndpoints(s *server.Server) {
	workspacesRouter := s.Router.PathPrefix("/workspaces").Subrouter()
	workspacesRouter.Use(s.TokenAuth.Middleware)

	workspacesRouter.HandleFunc("", handleCreateWorkspace(s)).Methods("POST")
	workspacesRouter.HandleFunc("", handleListWorkspaces(s)).Methods("GET")
	workspacesRouter.HandleFunc("/tree", handleWorkspaceTree(s)).Methods("GET")
	workspacesRouter.HandleFunc("/{id:[0-9]+}", handleGetWorkspace(s)).Methods("GET")
	workspacesRouter.HandleFunc("/{id:[0-9]+}", handleUpdateWorkspace(s)).Methods("PUT")
	workspacesRouter.HandleFunc("/{id:[0-9]+}", handleDeleteWorkspace(s)).Methods("DELETE")
}

func workspaceResponse(ws *model.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        ws.ID,
		OwnerID:   ws.OwnerID,
		Name:      ws.Name,
		Kind:      ws.Kind,
		CreatedAt: ws.CreatedAt.Format(time.RFC3339),
		UpdatedAt: ws.UpdatedAt.Format(time.RFC3339),
	}
}

func handleCreateWorkspace(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}

		var req workspaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		ws := &model.Workspace{
			OwnerID: principal,
			Name:    req.Name,
			Kind:    req.Kind,
		}
		if err := s.Workspaces.CreateWorkspace(ws); err != nil {
			respondWithStoreError(w, err)
			return
		}

		// Materialize the owner's full permission set alongside the
		// implicit ownership rule, so grant listings show the owner's
		// permissions without special-casing.
		if err := s.Access.BootstrapOwnerGrants(model.WorkspaceRef(ws.ID), principal); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, workspaceResponse(ws))
	}
}

func handleListWorkspaces(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}

		workspaces, err := s.Access.AccessibleWorkspaces(principal)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]WorkspaceResponse, 0, len(workspaces))
		for i := range workspaces {
			response = append(response, workspaceResponse(&workspaces[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleWorkspaceTree(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}

		filters := store.TreeFilters{
			Kind: r.URL.Query().Get("kind"),
			Name: r.URL.Query().Get("name"),
		}
		if activeParam := r.URL.Query().Get("active"); activeParam != "" {
			active := activeParam == "true" || activeParam == "1"
			filters.Active = &active
		}

		nodes, err := s.Access.Tree(principal, filters)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]TreeWorkspaceResponse, 0, len(nodes))
		for _, node := range nodes {
			entry := TreeWorkspaceResponse{
				ID:          node.ID,
				OwnerID:     node.OwnerID,
				Name:        node.Name,
				Kind:        node.Kind,
				Permissions: node.Permissions,
				Collections: make([]TreeCollectionResponse, 0, len(node.Collections)),
			}
			if entry.Permissions == nil {
				entry.Permissions = []model.Permission{}
			}
			for _, c := range node.Collections {
				entry.Collections = append(entry.Collections, TreeCollectionResponse{
					ID:     c.ID,
					Name:   c.Name,
					Active: c.Active,
				})
			}
			response = append(response, entry)
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetWorkspace(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid workspace id")
			return
		}

		if !requireAccess(s, w, principal, model.WorkspaceRef(id), model.PermissionView) {
			return
		}

		ws, err := s.Workspaces.FetchWorkspace(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, workspaceResponse(ws))
	}
}

func handleUpdateWorkspace(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid workspace id")
			return
		}

		var req workspaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		if !requireAccess(s, w, principal, model.WorkspaceRef(id), model.PermissionEdit) {
			return
		}

		ws, err := s.Workspaces.UpdateWorkspace(id, req.Name, req.Kind)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, workspaceResponse(ws))
	}
}

func handleDeleteWorkspace(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid workspace id")
			return
		}

		if !requireAccess(s, w, principal, model.WorkspaceRef(id), model.PermissionDelete) {
			return
		}

		if err := s.Access.DeleteWorkspaceCascade(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
