package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

// Ensure AccessStore implements store.AccessStore
var _ store.AccessStore = (*AccessStore)(nil)

// AccessStore implements store.AccessStore using GORM.
//
// Ownership is resolved in exactly one place (ownerOf) and both tiers share
// one authorization code path keyed on the reference's scope.
type AccessStore struct {
	db *gorm.DB
}

// NewAccessStore creates a new AccessStore
func NewAccessStore(db *gorm.DB) *AccessStore {
	return &AccessStore{db: db}
}

// ownerOf returns the owning principal of a workspace, or ErrNotFound.
func (s *AccessStore) ownerOf(workspaceID int64) (string, error) {
	var row struct {
		OwnerID string
	}
	result := s.db.Raw(`SELECT owner_id FROM workspaces WHERE id = ?`, workspaceID).Scan(&row)
	if result.Error != nil {
		return "", store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return "", store.ErrNotFound
	}
	return row.OwnerID, nil
}

// collectionWorkspace resolves the parent workspace of a collection, or
// ErrNotFound.
func (s *AccessStore) collectionWorkspace(collectionID int64) (int64, error) {
	var row struct {
		WorkspaceID int64
	}
	result := s.db.Raw(`SELECT workspace_id FROM collections WHERE id = ?`, collectionID).Scan(&row)
	if result.Error != nil {
		return 0, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, store.ErrNotFound
	}
	return row.WorkspaceID, nil
}

// resolveOwner returns the owning principal for any reference. For a
// collection this walks up to the parent workspace.
func (s *AccessStore) resolveOwner(ref model.Ref) (string, error) {
	switch ref.Scope {
	case model.ScopeWorkspace:
		return s.ownerOf(ref.ID)
	case model.ScopeCollection:
		workspaceID, err := s.collectionWorkspace(ref.ID)
		if err != nil {
			return "", err
		}
		return s.ownerOf(workspaceID)
	}
	return "", fmt.Errorf("unknown scope %q", ref.Scope)
}

func (s *AccessStore) grantExists(scope model.Scope, resourceID int64, principal string, permission model.Permission) (bool, error) {
	var exists bool
	err := s.db.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM access_grants
			WHERE scope = ? AND resource_id = ? AND principal_id = ? AND permission = ?
		)
	`, scope.String(), resourceID, principal, permission.String()).Scan(&exists).Error
	if err != nil {
		return false, store.OperationFailed(err)
	}
	return exists, nil
}

// Check reports whether the principal holds the permission on the resource.
// Denied is the boolean false; only missing resources are errors.
func (s *AccessStore) Check(principal string, ref model.Ref, permission model.Permission) (bool, error) {
	switch ref.Scope {
	case model.ScopeWorkspace:
		owner, err := s.ownerOf(ref.ID)
		if err != nil {
			return false, err
		}
		if owner == principal {
			return true, nil
		}
		return s.grantExists(model.ScopeWorkspace, ref.ID, principal, permission)

	case model.ScopeCollection:
		workspaceID, err := s.collectionWorkspace(ref.ID)
		if err != nil {
			return false, err
		}
		owner, err := s.ownerOf(workspaceID)
		if err != nil {
			return false, err
		}
		if owner == principal {
			return true, nil
		}

		// Workspace-scope grants are inherited by every collection
		// beneath the workspace.
		inherited, err := s.grantExists(model.ScopeWorkspace, workspaceID, principal, permission)
		if err != nil || inherited {
			return inherited, err
		}
		return s.grantExists(model.ScopeCollection, ref.ID, principal, permission)
	}

	return false, fmt.Errorf("unknown scope %q", ref.Scope)
}
