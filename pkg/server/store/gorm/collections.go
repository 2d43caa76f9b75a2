package gorm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// Ensure CollectionsStore implements store.CollectionsStore
var _ store.CollectionsStore = (*CollectionsStore)(nil)

// CollectionsStore implements store.CollectionsStore using GORM
type CollectionsStore struct {
	db *gorm.DB
}

// NewCollectionsStore creates a new CollectionsStore
func NewCollectionsStore(db *gorm.DB) *CollectionsStore {
	return &CollectionsStore{db: db}
}

// CreateCollection inserts a collection under its workspace. The parent
// workspace must exist (foreign key); a missing parent maps to ErrNotFound.
func (s *CollectionsStore) CreateCollection(c *model.Collection) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		INSERT INTO collections (workspace_id, name, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, c.WorkspaceID, c.Name, c.Active, c.CreatedAt, c.UpdatedAt).Scan(&row)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	c.ID = row.ID
	return nil
}

// FetchCollection retrieves a collection by id.
func (s *CollectionsStore) FetchCollection(id int64) (*model.Collection, error) {
	var c model.Collection
	result := s.db.Raw(`
		SELECT id, workspace_id, name, active, created_at, updated_at
		FROM collections WHERE id = ?
	`, id).Scan(&c)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

// ListCollections returns the collections under a workspace.
func (s *CollectionsStore) ListCollections(workspaceID int64) ([]model.Collection, error) {
	var collections []model.Collection
	err := s.db.Raw(`
		SELECT id, workspace_id, name, active, created_at, updated_at
		FROM collections WHERE workspace_id = ?
		ORDER BY id
	`, workspaceID).Scan(&collections).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return collections, nil
}

// UpdateCollection updates name and, when active is non-nil, the active
// flag. The workspace id is immutable.
func (s *CollectionsStore) UpdateCollection(id int64, name string, active *bool) (*model.Collection, error) {
	var result *gorm.DB
	if active != nil {
		result = s.db.Exec(`
			UPDATE collections SET name = ?, active = ?, updated_at = ? WHERE id = ?
		`, name, *active, time.Now().UTC(), id)
	} else {
		result = s.db.Exec(`
			UPDATE collections SET name = ?, updated_at = ? WHERE id = ?
		`, name, time.Now().UTC(), id)
	}
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.FetchCollection(id)
}

// DeactivateCollection soft-deletes a collection. Grants are untouched so
// reactivation restores access unchanged.
func (s *CollectionsStore) DeactivateCollection(id int64) (*model.Collection, error) {
	result := s.db.Exec(`
		UPDATE collections SET active = FALSE, updated_at = ? WHERE id = ?
	`, time.Now().UTC(), id)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.FetchCollection(id)
}

// DeleteCollection removes the collection and its own grants in one
// transaction. Workspace-scope grants are never touched; only workspace
// deletion cascades.
func (s *CollectionsStore) DeleteCollection(id int64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM access_grants WHERE scope = 'collection' AND resource_id = ?
		`, id).Error; err != nil {
			return err
		}

		result := tx.Exec(`DELETE FROM collections WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrNotFound
		}
		return store.OperationFailed(err)
	}
	return nil
}
