package gorm

import (
	"sort"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

type accessRow struct {
	PrincipalID string
	Name        *string
	Email       *string
	Permission  model.Permission
}

// UsersWithAccess lists every principal with any access to the resource.
// The owner comes first with the full valid-for-scope set; grantees follow,
// ordered by display name (principals missing from the directory sort last),
// ties broken by principal id. For a collection, workspace-scope and
// collection-scope grants are merged per principal.
func (s *AccessStore) UsersWithAccess(ref model.Ref) ([]store.UserAccess, error) {
	owner, err := s.resolveOwner(ref)
	if err != nil {
		return nil, err
	}

	var rows []accessRow
	switch ref.Scope {
	case model.ScopeWorkspace:
		err = s.db.Raw(`
			SELECT g.principal_id, u.name, u.email, g.permission
			FROM access_grants g
			LEFT JOIN users u ON u.id = g.principal_id
			WHERE g.scope = 'workspace' AND g.resource_id = ?
			ORDER BY g.principal_id, g.permission
		`, ref.ID).Scan(&rows).Error
	case model.ScopeCollection:
		workspaceID, werr := s.collectionWorkspace(ref.ID)
		if werr != nil {
			return nil, werr
		}
		err = s.db.Raw(`
			SELECT g.principal_id, u.name, u.email, g.permission
			FROM access_grants g
			LEFT JOIN users u ON u.id = g.principal_id
			WHERE (g.scope = 'workspace' AND g.resource_id = ?)
			   OR (g.scope = 'collection' AND g.resource_id = ?)
			ORDER BY g.principal_id, g.permission
		`, workspaceID, ref.ID).Scan(&rows).Error
	}
	if err != nil {
		return nil, store.OperationFailed(err)
	}

	byPrincipal := map[string]*store.UserAccess{}
	order := []string{}
	for _, row := range rows {
		// The owner's bootstrapped grant rows are subsumed by the
		// owner entry below.
		if row.PrincipalID == owner {
			continue
		}
		entry, ok := byPrincipal[row.PrincipalID]
		if !ok {
			entry = &store.UserAccess{PrincipalID: row.PrincipalID}
			if row.Name != nil {
				entry.Name = *row.Name
			}
			if row.Email != nil {
				entry.Email = *row.Email
			}
			byPrincipal[row.PrincipalID] = entry
			order = append(order, row.PrincipalID)
		}
		if !hasPermission(entry.Permissions, row.Permission) {
			entry.Permissions = append(entry.Permissions, row.Permission)
		}
	}

	ownerEntry := store.UserAccess{
		PrincipalID: owner,
		IsOwner:     true,
		Permissions: model.PermissionsForScope(ref.Scope),
	}
	if user, uerr := s.lookupUser(owner); uerr != nil {
		return nil, uerr
	} else if user != nil {
		ownerEntry.Name = user.Name
		ownerEntry.Email = user.Email
	}

	grantees := make([]store.UserAccess, 0, len(order))
	for _, id := range order {
		grantees = append(grantees, *byPrincipal[id])
	}
	sort.SliceStable(grantees, func(i, j int) bool {
		a, b := grantees[i], grantees[j]
		if (a.Name == "") != (b.Name == "") {
			return b.Name == ""
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PrincipalID < b.PrincipalID
	})

	return append([]store.UserAccess{ownerEntry}, grantees...), nil
}

// AccessibleWorkspaces returns workspaces the principal owns or holds an
// explicit view grant on.
func (s *AccessStore) AccessibleWorkspaces(principal string) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := s.db.Raw(`
		SELECT id, owner_id, name, kind, created_at, updated_at
		FROM workspaces
		WHERE owner_id = ?
		   OR id IN (
			SELECT resource_id FROM access_grants
			WHERE scope = 'workspace' AND principal_id = ? AND permission = 'view'
		   )
		ORDER BY id
	`, principal, principal).Scan(&workspaces).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}
	return workspaces, nil
}

func (s *AccessStore) lookupUser(id string) (*model.User, error) {
	var user model.User
	result := s.db.Raw(`SELECT id, name, email FROM users WHERE id = ?`, id).Scan(&user)
	if result.Error != nil {
		return nil, store.OperationFailed(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

func hasPermission(perms []model.Permission, p model.Permission) bool {
	for _, candidate := range perms {
		if candidate == p {
			return true
		}
	}
	return false
}
