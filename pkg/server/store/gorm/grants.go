package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

const upsertGrantSQL = `
	INSERT INTO access_grants (scope, resource_id, principal_id, permission, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (scope, resource_id, principal_id, permission)
	DO UPDATE SET updated_at = EXCLUDED.updated_at
`

const fetchGrantSQL = `
	SELECT scope, resource_id, principal_id, permission, created_at, updated_at
	FROM access_grants
	WHERE scope = ? AND resource_id = ? AND principal_id = ? AND permission = ?
`

// lockOwner resolves the owning principal of the reference inside tx and
// takes a share lock on the parent workspace row. A cascade delete locks the
// same row FOR UPDATE, so it waits for in-flight grant transactions to
// commit; a grant arriving after the cascade blocks until the cascade
// commits and then fails NotFound. Grant rows can never outlive their
// resource.
func lockOwner(tx *gorm.DB, ref model.Ref) (string, error) {
	workspaceID := ref.ID
	if ref.Scope == model.ScopeCollection {
		var row struct {
			WorkspaceID int64
		}
		result := tx.Raw(`SELECT workspace_id FROM collections WHERE id = ?`, ref.ID).Scan(&row)
		if result.Error != nil {
			return "", result.Error
		}
		if result.RowsAffected == 0 {
			return "", store.ErrNotFound
		}
		workspaceID = row.WorkspaceID
	}

	var row struct {
		OwnerID string
	}
	result := tx.Raw(`SELECT owner_id FROM workspaces WHERE id = ? FOR SHARE`, workspaceID).Scan(&row)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", store.ErrNotFound
	}
	return row.OwnerID, nil
}

// Grant upserts a grant for the principal on the referenced resource.
// The access_grants primary key backs the upsert, so concurrent grants of
// the same triple collapse into one row. The existence check and the insert
// run in one transaction under the workspace row lock.
func (s *AccessStore) Grant(ref model.Ref, principal string, permission model.Permission) (*model.Grant, error) {
	if !permission.ValidForScope(ref.Scope) {
		return nil, store.ErrInvalidPermissionForScope
	}

	now := time.Now().UTC()
	var grant model.Grant
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwner(tx, ref); err != nil {
			return err
		}
		err := tx.Exec(upsertGrantSQL,
			ref.Scope.String(), ref.ID, principal, permission.String(), now, now,
		).Error
		if err != nil {
			return err
		}
		return tx.Raw(fetchGrantSQL,
			ref.Scope.String(), ref.ID, principal, permission.String(),
		).Scan(&grant).Error
	})
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return &grant, nil
}

// Revoke deletes the matching grant and returns it. Revoking an absent
// grant is a no-op returning (nil, nil).
func (s *AccessStore) Revoke(ref model.Ref, principal string, permission model.Permission) (*model.Grant, error) {
	grant, err := s.fetchGrant(ref, principal, permission)
	if err != nil {
		return nil, err
	}
	if grant == nil {
		return nil, nil
	}

	err = s.db.Exec(`
		DELETE FROM access_grants
		WHERE scope = ? AND resource_id = ? AND principal_id = ? AND permission = ?
	`, ref.Scope.String(), ref.ID, principal, permission.String()).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return grant, nil
}

// BootstrapOwnerGrants upserts the full valid-for-scope permission set for
// the principal in a single transaction under the workspace row lock, for
// use at resource creation.
func (s *AccessStore) BootstrapOwnerGrants(ref model.Ref, principal string) error {
	now := time.Now().UTC()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwner(tx, ref); err != nil {
			return err
		}
		for _, permission := range model.PermissionsForScope(ref.Scope) {
			err := tx.Exec(upsertGrantSQL,
				ref.Scope.String(), ref.ID, principal, permission.String(), now, now,
			).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	return store.OperationFailed(err)
}

func (s *AccessStore) fetchGrant(ref model.Ref, principal string, permission model.Permission) (*model.Grant, error) {
	var grant model.Grant
	result := s.db.Raw(fetchGrantSQL,
		ref.Scope.String(), ref.ID, principal, permission.String(),
	).Scan(&grant)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &grant, nil
}
