package gorm

import (
	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/server/store"
)

// DeleteWorkspaceCascade removes a workspace, its collections, and every
// grant scoped to any of them in one transaction, ordered to satisfy the
// referential constraints. Collection content (documents, prompts,
// datasets) is removed by its ON DELETE CASCADE foreign keys.
func (s *AccessStore) DeleteWorkspaceCascade(workspaceID int64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Take the workspace row lock before touching grant rows. Grant
		// and BootstrapOwnerGrants hold a share lock on the same row, so
		// the cascade waits out in-flight grants; a grant arriving after
		// this point blocks until the cascade commits and then fails
		// NotFound.
		var row struct {
			ID int64
		}
		result := tx.Raw(`SELECT id FROM workspaces WHERE id = ? FOR UPDATE`, workspaceID).Scan(&row)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}

		if err := tx.Exec(`
			DELETE FROM access_grants WHERE scope = 'workspace' AND resource_id = ?
		`, workspaceID).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
			DELETE FROM access_grants
			WHERE scope = 'collection'
			  AND resource_id IN (SELECT id FROM collections WHERE workspace_id = ?)
		`, workspaceID).Error; err != nil {
			return err
		}

		if err := tx.Exec(`DELETE FROM collections WHERE workspace_id = ?`, workspaceID).Error; err != nil {
			return err
		}

		return tx.Exec(`DELETE FROM workspaces WHERE id = ?`, workspaceID).Error
	})
	return store.OperationFailed(err)
}
