package gorm

import (
	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

type treeRow struct {
	WorkspaceID    int64
	OwnerID        string
	WorkspaceName  string
	Kind           string
	CollectionID   *int64
	CollectionName *string
	Active         *bool
}

// Tree builds the filtered workspace tree visible to the principal.
//
// Visibility is the workspace-scope view check: owner or an explicit view
// grant. By the inheritance invariant that also covers every collection
// beneath a visible workspace, so collections carry no independent filter.
// The principal's grant set and owned workspaces are loaded once, not per
// row.
func (s *AccessStore) Tree(principal string, filters store.TreeFilters) ([]store.WorkspaceNode, error) {
	query := `
		SELECT w.id AS workspace_id, w.owner_id, w.name AS workspace_name, w.kind,
		       c.id AS collection_id, c.name AS collection_name, c.active
		FROM workspaces w
		LEFT JOIN collections c ON c.workspace_id = w.id
		WHERE (w.owner_id = ?
		   OR w.id IN (
			SELECT resource_id FROM access_grants
			WHERE scope = 'workspace' AND principal_id = ? AND permission = 'view'
		   ))
	`
	args := []interface{}{principal, principal}

	if filters.Kind != "" {
		query += ` AND w.kind = ?`
		args = append(args, filters.Kind)
	}
	if filters.Name != "" {
		query += ` AND w.name ILIKE ?`
		args = append(args, "%"+filters.Name+"%")
	}
	if filters.Active != nil {
		// Filtering on the joined column drops workspaces with no
		// matching collection, which is the intended semantics: the
		// active filter keeps a workspace only while at least one of
		// its collections matches.
		query += ` AND c.active = ?`
		args = append(args, *filters.Active)
	}

	query += ` ORDER BY w.id, c.id`

	var rows []treeRow
	if err := s.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, store.OperationFailed(err)
	}

	grantSets, err := s.workspaceGrantSets(principal)
	if err != nil {
		return nil, err
	}

	var nodes []store.WorkspaceNode
	index := map[int64]int{}
	seen := map[int64]map[int64]bool{}
	for _, row := range rows {
		i, ok := index[row.WorkspaceID]
		if !ok {
			permissions := grantSets[row.WorkspaceID]
			if row.OwnerID == principal {
				permissions = model.PermissionsForScope(model.ScopeWorkspace)
			}
			nodes = append(nodes, store.WorkspaceNode{
				ID:          row.WorkspaceID,
				OwnerID:     row.OwnerID,
				Name:        row.WorkspaceName,
				Kind:        row.Kind,
				Permissions: permissions,
				Collections: []store.CollectionNode{},
			})
			i = len(nodes) - 1
			index[row.WorkspaceID] = i
			seen[row.WorkspaceID] = map[int64]bool{}
		}

		if row.CollectionID == nil || seen[row.WorkspaceID][*row.CollectionID] {
			continue
		}
		seen[row.WorkspaceID][*row.CollectionID] = true

		node := store.CollectionNode{ID: *row.CollectionID}
		if row.CollectionName != nil {
			node.Name = *row.CollectionName
		}
		if row.Active != nil {
			node.Active = *row.Active
		}
		nodes[i].Collections = append(nodes[i].Collections, node)
	}

	return nodes, nil
}

// workspaceGrantSets loads the principal's workspace-scope grants as a map
// from workspace id to permission set.
func (s *AccessStore) workspaceGrantSets(principal string) (map[int64][]model.Permission, error) {
	var rows []struct {
		ResourceID int64
		Permission model.Permission
	}
	err := s.db.Raw(`
		SELECT resource_id, permission FROM access_grants
		WHERE scope = 'workspace' AND principal_id = ?
		ORDER BY resource_id, permission
	`, principal).Scan(&rows).Error
	if err != nil {
		return nil, store.OperationFailed(err)
	}

	sets := map[int64][]model.Permission{}
	for _, row := range rows {
		sets[row.ResourceID] = append(sets[row.ResourceID], row.Permission)
	}
	return sets, nil
}
