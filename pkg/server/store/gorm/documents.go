package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// Ensure DocumentsStore implements store.DocumentsStore
var _ store.DocumentsStore = (*DocumentsStore)(nil)

// DocumentsStore implements store.DocumentsStore using GORM
type DocumentsStore struct {
	db *gorm.DB
}

// NewDocumentsStore creates a new DocumentsStore
func NewDocumentsStore(db *gorm.DB) *DocumentsStore {
	return &DocumentsStore{db: db}
}

func (s *DocumentsStore) CreateDocument(d *model.Document) error {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		INSERT INTO documents (collection_id, name, body, configuration_details, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, d.CollectionID, d.Name, d.Body, d.ConfigurationDetails, d.CreatedAt, d.UpdatedAt).Scan(&row)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	d.ID = row.ID
	return nil
}

func (s *DocumentsStore) FetchDocument(id int64) (*model.Document, error) {
	var d model.Document
	result := s.db.Raw(`
		SELECT id, collection_id, name, body, configuration_details, created_at, updated_at
		FROM documents WHERE id = ?
	`, id).Scan(&d)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

func (s *DocumentsStore) ListDocuments(collectionID int64) ([]model.Document, error) {
	var docs []model.Document
	err := s.db.Raw(`
		SELECT id, collection_id, name, body, configuration_details, created_at, updated_at
		FROM documents WHERE collection_id = ?
		ORDER BY id
	`, collectionID).Scan(&docs).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return docs, nil
}

func (s *DocumentsStore) UpdateDocument(id int64, name, body, configurationDetails string) (*model.Document, error) {
	result := s.db.Exec(`
		UPDATE documents SET name = ?, body = ?, configuration_details = ?, updated_at = ?
		WHERE id = ?
	`, name, body, configurationDetails, time.Now().UTC(), id)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.FetchDocument(id)
}

func (s *DocumentsStore) DeleteDocument(id int64) error {
	result := s.db.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
