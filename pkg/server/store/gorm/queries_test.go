package gorm

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck/pkg/model"
	"github.com/workdeck/workdeck/pkg/server/store"
)

func TestUsersWithAccessWorkspace(t *testing.T) {
	s, mock := newMockAccessStore(t)

	mock.ExpectQuery(`SELECT owner_id FROM workspaces`).
		WithArgs(int64(1)).
		WillReturnRows(ownerRows("owner1"))

	// The owner's bootstrapped grant rows are in the table but must not
	// produce a second entry for the owner.
	accessRows := sqlmock.NewRows([]string{"principal_id", "name", "email", "permission"}).
		AddRow("owner1", "Olive", "olive@example.com", "view").
		AddRow("owner1", "Olive", "olive@example.com", "edit").
		AddRow("bob", "Bob", "bob@example.com", "edit").
		AddRow("bob", "Bob", "bob@example.com", "view").
		AddRow("zed", nil, nil, "view")
	mock.ExpectQuery(`LEFT JOIN users`).
		WithArgs(int64(1)).
		WillReturnRows(accessRows)

	mock.ExpectQuery(`SELECT id, name, email FROM users`).
		WithArgs("owner1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow("owner1", "Olive", "olive@example.com"))

	users, err := s.UsersWithAccess(model.WorkspaceRef(1))
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, "owner1", users[0].PrincipalID)
	assert.True(t, users[0].IsOwner)
	assert.Equal(t, "Olive", users[0].Name)
	assert.Equal(t, model.PermissionsForScope(model.ScopeWorkspace), users[0].Permissions)

	assert.Equal(t, "bob", users[1].PrincipalID)
	assert.False(t, users[1].IsOwner)
	assert.Equal(t, []model.Permission{model.PermissionEdit, model.PermissionView}, users[1].Permissions)

	// Principals missing from the directory sort last.
	assert.Equal(t, "zed", users[2].PrincipalID)
	assert.Empty(t, users[2].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersWithAccessCollectionMergesTiers(t *testing.T) {
	s, mock := newMockAccessStore(t)

	mock.ExpectQuery(`SELECT workspace_id FROM collections`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"workspace_id"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT owner_id FROM workspaces`).
		WithArgs(int64(1)).
		WillReturnRows(ownerRows("owner1"))

	// bob holds view at the workspace tier and edit at the collection
	// tier; both land in one merged entry, duplicates collapsed.
	accessRows := sqlmock.NewRows([]string{"principal_id", "name", "email", "permission"}).
		AddRow("bob", "Bob", "bob@example.com", "view").
		AddRow("bob", "Bob", "bob@example.com", "edit").
		AddRow("bob", "Bob", "bob@example.com", "view")
	mock.ExpectQuery(`LEFT JOIN users`).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(accessRows)

	mock.ExpectQuery(`SELECT id, name, email FROM users`).
		WithArgs("owner1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	users, err := s.UsersWithAccess(model.CollectionRef(10))
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.True(t, users[0].IsOwner)
	assert.Equal(t, model.PermissionsForScope(model.ScopeCollection), users[0].Permissions)

	assert.Equal(t, "bob", users[1].PrincipalID)
	assert.Equal(t, []model.Permission{model.PermissionView, model.PermissionEdit}, users[1].Permissions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessibleWorkspaces(t *testing.T) {
	s, mock := newMockAccessStore(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "owner_id", "name", "kind", "created_at", "updated_at"}).
		AddRow(int64(1), "bob", "Research", "team", now, now).
		AddRow(int64(3), "alice", "Shared", "team", now, now)
	mock.ExpectQuery(`FROM workspaces`).
		WithArgs("bob", "bob").
		WillReturnRows(rows)

	workspaces, err := s.AccessibleWorkspaces("bob")
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	assert.Equal(t, int64(1), workspaces[0].ID)
	assert.Equal(t, "Shared", workspaces[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTree(t *testing.T) {
	s, mock := newMockAccessStore(t)

	// Workspace 1 is owned by bob with two collections; workspace 2 is
	// visible through a view grant. Duplicate join rows collapse.
	treeRows := sqlmock.NewRows([]string{
		"workspace_id", "owner_id", "workspace_name", "kind",
		"collection_id", "collection_name", "active",
	}).
		AddRow(int64(1), "bob", "Research", "team", int64(10), "Papers", true).
		AddRow(int64(1), "bob", "Research", "team", int64(11), "Archive", false).
		AddRow(int64(2), "alice", "Shared", "team", nil, nil, nil)
	mock.ExpectQuery(`LEFT JOIN collections`).
		WithArgs("bob", "bob").
		WillReturnRows(treeRows)

	grantSetRows := sqlmock.NewRows([]string{"resource_id", "permission"}).
		AddRow(int64(2), "view")
	mock.ExpectQuery(`SELECT resource_id, permission FROM access_grants`).
		WithArgs("bob").
		WillReturnRows(grantSetRows)

	nodes, err := s.Tree("bob", store.TreeFilters{})
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, int64(1), nodes[0].ID)
	assert.Equal(t, model.PermissionsForScope(model.ScopeWorkspace), nodes[0].Permissions)
	require.Len(t, nodes[0].Collections, 2)
	assert.Equal(t, "Papers", nodes[0].Collections[0].Name)
	assert.True(t, nodes[0].Collections[0].Active)
	assert.False(t, nodes[0].Collections[1].Active)

	assert.Equal(t, int64(2), nodes[1].ID)
	assert.Equal(t, []model.Permission{model.PermissionView}, nodes[1].Permissions)
	assert.Empty(t, nodes[1].Collections)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTreeFilters(t *testing.T) {
	s, mock := newMockAccessStore(t)

	treeRows := sqlmock.NewRows([]string{
		"workspace_id", "owner_id", "workspace_name", "kind",
		"collection_id", "collection_name", "active",
	}).
		AddRow(int64(1), "bob", "Research", "team", int64(10), "Papers", true)
	mock.ExpectQuery(`LEFT JOIN collections`).
		WithArgs("bob", "bob", "team", "%res%", true).
		WillReturnRows(treeRows)

	mock.ExpectQuery(`SELECT resource_id, permission FROM access_grants`).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"resource_id", "permission"}))

	active := true
	nodes, err := s.Tree("bob", store.TreeFilters{Kind: "team", Name: "res", Active: &active})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Collections, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
