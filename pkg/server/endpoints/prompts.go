package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
)

// PromptResponseBody represents a logged prompt in the API response
type PromptResponseBody struct {
	ID           int64  `json:"id"`
	CollectionID int64  `json:"collection_id"`
	PromptText   string `json:"prompt_text"`
	PromptOut    string `json:"prompt_out,omitempty"`
	UserName     string `json:"user_name,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// CachedResponseBody represents a cached pipeline response
type CachedResponseBody struct {
	CollectionID int64  `json:"collection_id"`
	PromptText   string `json:"prompt_text"`
	PromptOut    string `json:"prompt_out"`
	HashKey      string `json:"hash_key"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

type promptRequest struct {
	PromptText string `json:"prompt_text"`
	PromptOut  string `json:"prompt_out"`
	UserName   string `json:"user_name"`
}

type cachedResponseRequest struct {
	PromptText string `json:"prompt_text"`
	PromptOut  string `json:"prompt_out"`
	HashKey    string `json:"hash_key"`
}

// RegisterPromptsEndpoints registers the prompt log and response cache
// endpoints. Any principal that can view a collection can log prompts and
// use the cache; the pipeline writes on behalf of whoever is asking.
func RegisterPromptsEndpoints(s *server.Server) {
	promptsRouter := s.Router.PathPrefix("/collections/{id:[0-9]+}").Subrouter()
	promptsRouter.Use(s.TokenAuth.Middleware)

	promptsRouter.HandleFunc("/prompts", handleCreatePrompt(s)).Methods("POST")
	promptsRouter.HandleFunc("/prompts", handleListPrompts(s)).Methods("GET")
	promptsRouter.HandleFunc("/responses/{hash}", handleGetCachedResponse(s)).Methods("GET")
	promptsRouter.HandleFunc("/responses", handleStoreCachedResponse(s)).Methods("PUT")
}

func handleCreatePrompt(s *server.Server) http.HandlerFunc {
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

		var req promptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PromptText == "" {
			respondWithError(w, http.StatusBadRequest, "prompt_text is required")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(collectionID), model.PermissionView) {
			return
		}

		userName := req.UserName
		if userName == "" {
			userName = principal
		}

		prompt := &model.Prompt{
			CollectionID: collectionID,
			PromptText:   req.PromptText,
			PromptOut:    req.PromptOut,
			UserName:     userName,
		}
		if err := s.Prompts.CreatePrompt(prompt); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, PromptResponseBody{
			ID:           prompt.ID,
			CollectionID: prompt.CollectionID,
			PromptText:   prompt.PromptText,
			PromptOut:    prompt.PromptOut,
			UserName:     prompt.UserName,
			CreatedAt:    prompt.CreatedAt.Format(time.RFC3339),
		})
	}
}

func handleListPrompts(s *server.Server) http.HandlerFunc {
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

		prompts, err := s.Prompts.ListPrompts(collectionID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]PromptResponseBody, 0, len(prompts))
		for _, prompt := range prompts {
			response = append(response, PromptResponseBody{
				ID:           prompt.ID,
				CollectionID: prompt.CollectionID,
				PromptText:   prompt.PromptText,
				PromptOut:    prompt.PromptOut,
				UserName:     prompt.UserName,
				CreatedAt:    prompt.CreatedAt.Format(time.RFC3339),
			})
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

// handleGetCachedResponse is a cache lookup: a miss is 404 and carries no
// body worth retrying on.
func handleGetCachedResponse(s *server.Server) http.HandlerFunc {
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
		hashKey := mux.Vars(r)["hash"]

		if !s.Config.PromptCacheEnabled {
			respondWithError(w, http.StatusNotFound, "prompt cache is disabled")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(collectionID), model.PermissionView) {
			return
		}

		cached, err := s.Prompts.FetchCachedResponse(collectionID, hashKey)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, CachedResponseBody{
			CollectionID: cached.CollectionID,
			PromptText:   cached.PromptText,
			PromptOut:    cached.PromptOut,
			HashKey:      cached.HashKey,
			CreatedAt:    cached.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    cached.UpdatedAt.Format(time.RFC3339),
		})
	}
}

func handleStoreCachedResponse(s *server.Server) http.HandlerFunc {
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

		if !s.Config.PromptCacheEnabled {
			respondWithError(w, http.StatusBadRequest, "prompt cache is disabled")
			return
		}

		var req cachedResponseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.HashKey == "" || req.PromptText == "" {
			respondWithError(w, http.StatusBadRequest, "prompt_text and hash_key are required")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(collectionID), model.PermissionView) {
			return
		}

		cached := &model.PromptResponse{
			CollectionID: collectionID,
			PromptText:   req.PromptText,
			PromptOut:    req.PromptOut,
			HashKey:      req.HashKey,
		}
		if err := s.Prompts.StoreCachedResponse(cached); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, CachedResponseBody{
			CollectionID: cached.CollectionID,
			PromptText:   cached.PromptText,
			PromptOut:    cached.PromptOut,
			HashKey:      cached.HashKey,
			CreatedAt:    cached.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    cached.UpdatedAt.Format(time.RFC3339),
		})
	}
}
