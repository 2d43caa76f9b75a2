package endpoints

import (
	"net/http"
	"os"

	"github.com/workdeck/workdeck/pkg/server"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// StatusResponse represents the response from the status endpoint
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthResponse represents the response from the health endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterStatusEndpoints registers the status and health endpoints
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.Health

	// No auth required on either
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("WORKDECK_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Version: version,
		})
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.Ping(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "error",
				Database: "unreachable",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Database: "ok",
		})
	}
}
