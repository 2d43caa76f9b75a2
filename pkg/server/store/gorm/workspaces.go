package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// Ensure WorkspacesStore implements store.WorkspacesStore
var _ store.WorkspacesStore = (*WorkspacesStore)(nil)

// WorkspacesStore implements store.WorkspacesStore using GORM
type WorkspacesStore struct {
	db *gorm.DB
}

// NewWorkspacesStore creates a new WorkspacesStore
func NewWorkspacesStore(db *gorm.DB) *WorkspacesStore {
	return &WorkspacesStore{db: db}
}

// CreateWorkspace inserts a workspace and fills in its generated ID.
func (s *WorkspacesStore) CreateWorkspace(ws *model.Workspace) error {
	now := time.Now().UTC()
	ws.CreatedAt = now
	ws.UpdatedAt = now

	var row struct {
		ID int64
	}
	result := s.db.Raw(`
		INSERT INTO workspaces (owner_id, name, kind, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, ws.OwnerID, ws.Name, ws.Kind, ws.CreatedAt, ws.UpdatedAt).Scan(&row)
	if result.Error != nil {
		return store.OperationFailed(result.Error)
	}
	ws.ID = row.ID
	return nil
}

// FetchWorkspace retrieves a workspace by id.
func (s *WorkspacesStore) FetchWorkspace(id int64) (*model.Workspace, error) {
	var ws model.Workspace
	result := s.db.Raw(`
		SELECT id, owner_id, name, kind, created_at, updated_at
		FROM workspaces WHERE id = ?
	`, id).Scan(&ws)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &ws, nil
}

// UpdateWorkspace updates the mutable fields. The owner is never touched.
func (s *WorkspacesStore) UpdateWorkspace(id int64, name, kind string) (*model.Workspace, error) {
	result := s.db.Exec(`
		UPDATE workspaces SET name = ?, kind = ?, updated_at = ? WHERE id = ?
	`, name, kind, time.Now().UTC(), id)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return s.FetchWorkspace(id)
}
