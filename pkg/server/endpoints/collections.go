package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
)

// CollectionResponse represents a collection in the API response
type CollectionResponse struct {
	ID          int64  `json:"id"`
	WorkspaceID int64  `json:"workspace_id"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type collectionRequest struct {
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"`
}

// RegisterCollectionsEndpoints registers the collections API endpoints
func RegisterCollectionsEndpoints(s *server.Server) {
	nestedRouter := s.Router.PathPrefix("/workspaces/{id:[0-9]+}/collections").Subrouter()
	nestedRouter.Use(s.TokenAuth.Middleware)

	nestedRouter.HandleFunc("", handleCreateCollection(s)).Methods("POST")
	nestedRouter.HandleFunc("", handleListCollections(s)).Methods("GET")

	collectionsRouter := s.Router.PathPrefix("/collections").Subrouter()
	collectionsRouter.Use(s.TokenAuth.Middleware)

	collectionsRouter.HandleFunc("/{id:[0-9]+}", handleGetCollection(s)).Methods("GET")
	collectionsRouter.HandleFunc("/{id:[0-9]+}", handleUpdateCollection(s)).Methods("PUT")
	collectionsRouter.HandleFunc("/{id:[0-9]+}", handleDeleteCollection(s)).Methods("DELETE")
}

func collectionResponse(c *model.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID,
		WorkspaceID: c.WorkspaceID,
		Name:        c.Name,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func handleCreateCollection(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		workspaceID, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid workspace id")
			return
		}

		var req collectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		if !requireAccess(s, w, principal, model.WorkspaceRef(workspaceID), model.PermissionCreate) {
			return
		}

		collection := &model.Collection{
			WorkspaceID: workspaceID,
			Name:        req.Name,
			Active:      true,
		}
		if err := s.Collections.CreateCollection(collection); err != nil {
			respondWithStoreError(w, err)
			return
		}

		// The creating principal gets the collection-scope permission set,
		// so collections created by a non-owner stay manageable by their
		// creator.
		if err := s.Access.BootstrapOwnerGrants(model.CollectionRef(collection.ID), principal); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, collectionResponse(collection))
	}
}

func handleListCollections(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		workspaceID, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid workspace id")
			return
		}

		if !requireAccess(s, w, principal, model.WorkspaceRef(workspaceID), model.PermissionView) {
			return
		}

		collections, err := s.Collections.ListCollections(workspaceID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]CollectionResponse, 0, len(collections))
		for i := range collections {
			response = append(response, collectionResponse(&collections[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetCollection(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid collection id")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(id), model.PermissionView) {
			return
		}

		collection, err := s.Collections.FetchCollection(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, collectionResponse(collection))
	}
}

func handleUpdateCollection(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid collection id")
			return
		}

		var req collectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(id), model.PermissionEdit) {
			return
		}

		collection, err := s.Collections.UpdateCollection(id, req.Name, req.Active)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, collectionResponse(collection))
	}
}

// handleDeleteCollection soft-deletes by default. Passing ?purge=true removes
// the collection row and its collection-scope grants for good.
func handleDeleteCollection(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid collection id")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(id), model.PermissionDelete) {
			return
		}

		if r.URL.Query().Get("purge") == "true" {
			if err := s.Collections.DeleteCollection(id); err != nil {
				respondWithStoreError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		collection, err := s.Collections.DeactivateCollection(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, collectionResponse(collection))
	}
}
