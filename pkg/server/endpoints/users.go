package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
)

// UserResponse represents a directory entry in the API response
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type userRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RegisterUsersEndpoints registers the principal directory endpoints.
// The directory only supplies display names for access listings;
// authentication itself is external.
func RegisterUsersEndpoints(s *server.Server) {
	usersRouter := s.Router.PathPrefix("/users").Subrouter()
	usersRouter.Use(s.TokenAuth.Middleware)

	usersRouter.HandleFunc("", handleCreateUser(s)).Methods("POST")
	usersRouter.HandleFunc("", handleListUsers(s)).Methods("GET")
	usersRouter.HandleFunc("/{id}", handleGetUser(s)).Methods("GET")
}

func userResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func handleCreateUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentPrincipal(w, r); !ok {
			return
		}

		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			respondWithError(w, http.StatusBadRequest, "id is required")
			return
		}

		user := &model.User{
			ID:    req.ID,
			Name:  req.Name,
			Email: req.Email,
			Role:  req.Role,
		}
		if err := s.Users.CreateUser(user); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, userResponse(user))
	}
}

func handleListUsers(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentPrincipal(w, r); !ok {
			return
		}

		users, err := s.Users.ListUsers()
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]UserResponse, 0, len(users))
		for i := range users {
			response = append(response, userResponse(&users[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentPrincipal(w, r); !ok {
			return
		}

		user, err := s.Users.FetchUser(mux.Vars(r)["id"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, userResponse(user))
	}
}
