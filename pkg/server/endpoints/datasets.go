package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server"
)

// DatasetResponse represents a dataset in the API response
type DatasetResponse struct {
	ID           int64  `json:"id"`
	CollectionID int64  `json:"collection_id"`
	Name         string `json:"table_name"`
	Description  string `json:"table_description,omitempty"`
	ColumnDetail string `json:"column_detail,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// UploadResponse represents dataset upload metadata in the API response
type UploadResponse struct {
	ID           int64  `json:"id"`
	DatasetID    int64  `json:"dataset_id"`
	MonthYear    string `json:"month_year"`
	Approved     bool   `json:"approved"`
	Filename     string `json:"filename"`
	DownloadLink string `json:"download_link,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type datasetRequest struct {
	Name         string `json:"table_name"`
	Description  string `json:"table_description"`
	ColumnDetail string `json:"column_detail"`
}

type uploadRequest struct {
	MonthYear    string `json:"month_year"`
	Filename     string `json:"filename"`
	DownloadLink string `json:"download_link"`
}

// RegisterDatasetsEndpoints registers the dataset registry and upload
// metadata endpoints. File contents live in external object storage; only
// metadata passes through here.
func RegisterDatasetsEndpoints(s *server.Server) {
	nestedRouter := s.Router.PathPrefix("/collections/{id:[0-9]+}/datasets").Subrouter()
	nestedRouter.Use(s.TokenAuth.Middleware)

	nestedRouter.HandleFunc("", handleCreateDataset(s)).Methods("POST")
	nestedRouter.HandleFunc("", handleListDatasets(s)).Methods("GET")

	datasetsRouter := s.Router.PathPrefix("/datasets").Subrouter()
	datasetsRouter.Use(s.TokenAuth.Middleware)

	datasetsRouter.HandleFunc("/{id:[0-9]+}", handleGetDataset(s)).Methods("GET")
	datasetsRouter.HandleFunc("/{id:[0-9]+}", handleDeleteDataset(s)).Methods("DELETE")
	datasetsRouter.HandleFunc("/{id:[0-9]+}/uploads", handleCreateUpload(s)).Methods("POST")
	datasetsRouter.HandleFunc("/{id:[0-9]+}/uploads", handleListUploads(s)).Methods("GET")

	uploadsRouter := s.Router.PathPrefix("/uploads").Subrouter()
	uploadsRouter.Use(s.TokenAuth.Middleware)

	uploadsRouter.HandleFunc("/{id:[0-9]+}/approve", handleApproveUpload(s)).Methods("POST")
}

func datasetResponse(d *model.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:           d.ID,
		CollectionID: d.CollectionID,
		Name:         d.Name,
		Description:  d.Description,
		ColumnDetail: d.ColumnDetail,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339),
	}
}

func uploadResponse(u *model.DatasetUpload) UploadResponse {
	return UploadResponse{
		ID:           u.ID,
		DatasetID:    u.DatasetID,
		MonthYear:    u.MonthYear,
		Approved:     u.Approved,
		Filename:     u.Filename,
		DownloadLink: u.DownloadLink,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

// datasetCollection resolves the parent collection for access checks.
func datasetCollection(s *server.Server, w http.ResponseWriter, datasetID int64) (*model.Dataset, bool) {
	dataset, err := s.Datasets.FetchDataset(datasetID)
	if err != nil {
		respondWithStoreError(w, err)
		return nil, false
	}
	return dataset, true
}

func handleCreateDataset(s *server.Server) http.HandlerFunc {
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

		var req datasetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "table_name is required")
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(collectionID), model.PermissionEdit) {
			return
		}

		dataset := &model.Dataset{
			CollectionID: collectionID,
			Name:         req.Name,
			Description:  req.Description,
			ColumnDetail: req.ColumnDetail,
		}
		if err := s.Datasets.CreateDataset(dataset); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, datasetResponse(dataset))
	}
}

func handleListDatasets(s *server.Server) http.HandlerFunc {
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

		datasets, err := s.Datasets.ListDatasets(collectionID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]DatasetResponse, 0, len(datasets))
		for i := range datasets {
			response = append(response, datasetResponse(&datasets[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetDataset(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid dataset id")
			return
		}

		dataset, ok := datasetCollection(s, w, id)
		if !ok {
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(dataset.CollectionID), model.PermissionView) {
			return
		}

		respondWithJSON(w, http.StatusOK, datasetResponse(dataset))
	}
}

func handleDeleteDataset(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid dataset id")
			return
		}

		dataset, ok := datasetCollection(s, w, id)
		if !ok {
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(dataset.CollectionID), model.PermissionEdit) {
			return
		}

		if err := s.Datasets.DeleteDataset(id); err != nil {
			respondWithStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCreateUpload(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		datasetID, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid dataset id")
			return
		}

		var req uploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MonthYear == "" || req.Filename == "" {
			respondWithError(w, http.StatusBadRequest, "month_year and filename are required")
			return
		}

		dataset, ok := datasetCollection(s, w, datasetID)
		if !ok {
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(dataset.CollectionID), model.PermissionEdit) {
			return
		}

		upload := &model.DatasetUpload{
			DatasetID:    datasetID,
			MonthYear:    req.MonthYear,
			Filename:     req.Filename,
			DownloadLink: req.DownloadLink,
		}
		if err := s.Datasets.CreateUpload(upload); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, uploadResponse(upload))
	}
}

func handleListUploads(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		datasetID, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid dataset id")
			return
		}

		dataset, ok := datasetCollection(s, w, datasetID)
		if !ok {
			return
		}

		if !requireAccess(s, w, principal, model.CollectionRef(dataset.CollectionID), model.PermissionView) {
			return
		}

		uploads, err := s.Datasets.ListUploads(datasetID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]UploadResponse, 0, len(uploads))
		for i := range uploads {
			response = append(response, uploadResponse(&uploads[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleApproveUpload(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := currentPrincipal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(r, "id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid upload id")
			return
		}

		// Resolve upload -> dataset -> collection for the access check.
		existing, err := s.Datasets.FetchUpload(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		dataset, ok := datasetCollection(s, w, existing.DatasetID)
		if !ok {
			return
		}
		if !requireAccess(s, w, principal, model.CollectionRef(dataset.CollectionID), model.PermissionEdit) {
			return
		}

		upload, err := s.Datasets.ApproveUpload(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, uploadResponse(upload))
	}
}
