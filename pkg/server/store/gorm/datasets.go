package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// Ensure DatasetsStore implements store.DatasetsStore
var _ store.DatasetsStore = (*DatasetsStore)(nil)

// DatasetsStore implements store.DatasetsStore using GORM
type DatasetsStore struct {
	db *gorm.DB
}

// NewDatasetsStore creates a new DatasetsStore
func NewDatasetsStore(db *gorm.DB) *DatasetsStore {
	return &DatasetsStore{db: db}
}

func (s *DatasetsStore) CreateDataset(d *model.Dataset) error {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		INSERT INTO datasets (collection_id, table_name, table_description, column_detail, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, d.CollectionID, d.Name, d.Description, d.ColumnDetail, d.CreatedAt, d.UpdatedAt).Scan(&row)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	d.ID = row.ID
	return nil
}

func (s *DatasetsStore) FetchDataset(id int64) (*model.Dataset, error) {
	var d model.Dataset
	result := s.db.Raw(`
		SELECT id, collection_id, table_name, table_description, column_detail, created_at, updated_at
		FROM datasets WHERE id = ?
	`, id).Scan(&d)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

func (s *DatasetsStore) ListDatasets(collectionID int64) ([]model.Dataset, error) {
	var datasets []model.Dataset
	err := s.db.Raw(`
		SELECT id, collection_id, table_name, table_description, column_detail, created_at, updated_at
		FROM datasets WHERE collection_id = ?
		ORDER BY id
	`, collectionID).Scan(&datasets).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return datasets, nil
}

// DeleteDataset removes a dataset; its uploads go with it via the
// ON DELETE CASCADE foreign key.
func (s *DatasetsStore) DeleteDataset(id int64) error {
	result := s.db.Exec(`DELETE FROM datasets WHERE id = ?`, id)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *DatasetsStore) CreateUpload(u *model.DatasetUpload) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		INSERT INTO dataset_uploads (dataset_id, month_year, approved, filename, download_link, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, u.DatasetID, u.MonthYear, u.Approved, u.Filename, u.DownloadLink, u.CreatedAt, u.UpdatedAt).Scan(&row)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	u.ID = row.ID
	return nil
}

func (s *DatasetsStore) FetchUpload(id int64) (*model.DatasetUpload, error) {
	var u model.DatasetUpload
	result := s.db.Raw(`
		SELECT id, dataset_id, month_year, approved, filename, download_link, created_at, updated_at
		FROM dataset_uploads WHERE id = ?
	`, id).Scan(&u)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *DatasetsStore) ListUploads(datasetID int64) ([]model.DatasetUpload, error) {
	var uploads []model.DatasetUpload
	err := s.db.Raw(`
		SELECT id, dataset_id, month_year, approved, filename, download_link, created_at, updated_at
		FROM dataset_uploads WHERE dataset_id = ?
		ORDER BY id
	`, datasetID).Scan(&uploads).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return uploads, nil
}

func (s *DatasetsStore) ApproveUpload(id int64) (*model.DatasetUpload, error) {
	result := s.db.Exec(`
		UPDATE dataset_uploads SET approved = TRUE, updated_at = ? WHERE id = ?
	`, time.Now().UTC(), id)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	var u model.DatasetUpload
	fetch := s.db.Raw(`
		SELECT id, dataset_id, month_year, approved, filename, download_link, created_at, updated_at
		FROM dataset_uploads WHERE id = ?
	`, id).Scan(&u)
	if fetch.Error != nil {
		return nil, store.OperationFailed(fetch.Error)
	}
	return &u, nil
}
