package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
)

// DocumentResponse represents a document in the API response
type DocumentResponse struct {
	ID                   int64  `json:"id"`
	CollectionID         int64  `json:"collection_id"`
	Name                 string `json:"name"`
	Body                 string `json:"body"`
	ConfigurationDetails string `json:"configuration_details,omitempty"`
	RenderedBody         string `json:"rendered_body,omitempty"`
	CreatedAt            string `json:"created_at,omitempty"`
	UpdatedAt            string `json:"updated_at,omitempty"`
}

type documentRequest struct {
	Name                 string `json:"name"`
	Body                 string `json:"body"`
	ConfigurationDetails string `json:"configuration_details"`
}

// markdown renders document bodies. GFM matches what collection editors
// paste in from their existing docs.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RegisterDocumentsEndpoints registers the documents API endpoints
func RegisterDocumentsEndpoints(s *server.Server) {
	nestedRouter := s.Router.PathPrefix("/collections/{id:[0-9]+}/documents").Subrouter()
	nestedRouter.Use(s.TokenAuth.Middleware)

	nestedRouter.HandleFunc("", handleCreateDocument(s)).Methods("POST")
	nestedRouter.HandleFunc("", handleListDocuments(s)).Methods("GET")

	documentsRouter := s.Router.PathPrefix("/documents").Subrouter()
	documentsRouter.Use(s.TokenAuth.Middleware)

	documentsRouter.HandleFunc("/{id:[0-9]+}", handleGetDocument(s)).Methods("GET")
	documentsRouter.HandleFunc("/{id:[0-9]+}", handleUpdateDocument(s)).Methods("PUT")
	documentsRouter.HandleFunc("/{id:[0-9]+}", handleDeleteDocument(s)).Methods("DELETE")
}

func documentResponse(d *model.Document) DocumentResponse {
	return DocumentResponse{
		ID:                   d.ID,
		CollectionID:         d.CollectionID,
		Name:                 d.Name,
		Body:                 d.Body,
		ConfigurationDetails: d.ConfigurationDetails,
		CreatedAt:            d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            d.UpdatedAt.Format(time.RFC3339),
	}
}

func handleCreateDocument(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		collectionID, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid collection id")
			return
		}

		var req documentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(collectionID), model.PermissionEdit) {
			return
		}

		document := &model.Document{
			CollectionID:         collectionID,
			Name:                 req.Name,
			Body:                 req.Body,
			ConfigurationDetails: req.ConfigurationDetails,
		}
		if err := s.Documents.CreateDocument(document); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, documentResponse(document))
	}
}

func handleListDocuments(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		collectionID, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid collection id")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(collectionID), model.PermissionView) {
			return
		}

		documents, err := s.Documents.ListDocuments(collectionID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]DocumentResponse, 0, len(documents))
		for i := range documents {
			response = append(response, documentResponse(&documents[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

// handleGetDocument returns a document. With ?render=html the markdown body
// is also rendered server-side, when rendering is enabled in config.
func handleGetDocument(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid document id")
			return
		}

		document, err := s.Documents.FetchDocument(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(document.CollectionID), model.PermissionView) {
			return
		}

		response := documentResponse(document)
		if r.URL.Query().Get("render") == "html" {
			if !s.Config.MarkdownRenderEnabled {
				respondWithError(w, http.StatusBadRequest, "markdown rendering is disabled")
				return
			}
			var buf bytes.Buffer
			if err := markdown.Convert([]byte(document.Body), &buf); err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to render document")
				return
			}
			response.RenderedBody = buf.String()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleUpdateDocument(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid document id")
			return
		}

		var req documentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		document, err := s.Documents.FetchDocument(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(document.CollectionID), model.PermissionEdit) {
			return
		}

		updated, err := s.Documents.UpdateDocument(id, req.Name, req.Body, req.ConfigurationDetails)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, documentResponse(updated))
	}
}

func handleDeleteDocument(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid document id")
			return
		}

		document, err := s.Documents.FetchDocument(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(document.CollectionID), model.PermissionEdit) {
			return
		}

		if err := s.Documents.DeleteDocument(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
