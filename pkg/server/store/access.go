package store

import (
	"github.com/workdeck/workdeck/pkg/model"
)

// UserAccess is one row of an access listing: a principal and the
// permissions it holds on a resource. Owners are listed first with the full
// valid-for-scope permission set and no backing grant rows required.
type UserAccess struct {
	PrincipalID string
	Name        string
	Email       string
	IsOwner     bool
	Permissions []model.Permission
}

// TreeFilters narrows the workspace tree. Zero values mean "no filter".
// Active applies to collections only: when set, a workspace is kept only if
// at least one of its collections matches.
type TreeFilters struct {
	Kind   string
	Name   string
	Active *bool
}

// CollectionNode is a collection entry in the workspace tree.
type CollectionNode struct {
	ID     int64
	Name   string
	Active bool
}

// WorkspaceNode is a workspace entry in the tree, annotated with the
// requesting principal's workspace-scope permissions. Collection-scope
// grants do not appear here; use UsersWithAccess for those.
type WorkspaceNode struct {
	ID          int64
	OwnerID     string
	Name        string
	Kind        string
	Permissions []model.Permission
	Collections []CollectionNode
}

// AccessStore is the hierarchical access-control engine.
type AccessStore interface {
	// Check reports whether the principal holds the permission on the
	// referenced resource. The workspace owner implicitly holds every
	// permission on the workspace and its collections; a workspace-scope
	// grant implies the same permission on every collection beneath it.
	// Collection-scope grants never propagate upward. Returns ErrNotFound
	// if the referenced resource does not exist.
	Check(principal string, ref model.Ref, permission model.Permission) (bool, error)

	// Grant upserts a grant. A second grant of the same triple updates
	// UpdatedAt and leaves a single row. Returns
	// ErrInvalidPermissionForScope for permissions outside the scope's
	// valid set and ErrNotFound if the resource does not exist.
	Grant(ref model.Ref, principal string, permission model.Permission) (*model.Grant, error)

	// Revoke deletes the matching grant and returns it, or (nil, nil) if
	// no such grant exists. Revoking an absent grant is not an error.
	Revoke(ref model.Ref, principal string, permission model.Permission) (*model.Grant, error)

	// BootstrapOwnerGrants upserts one grant per valid permission for the
	// scope, for use at resource-creation time. All-or-nothing.
	BootstrapOwnerGrants(ref model.Ref, principal string) error

	// UsersWithAccess lists every principal with any access to the
	// resource: the owner first, then grantees ordered by display name
	// (missing names last, ties broken by principal id). For collections
	// the listing merges workspace-scope and collection-scope grants per
	// principal.
	UsersWithAccess(ref model.Ref) ([]UserAccess, error)

	// AccessibleWorkspaces returns the workspaces the principal owns or
	// holds an explicit view grant on.
	AccessibleWorkspaces(principal string) ([]model.Workspace, error)

	// Tree builds the filtered, permission-annotated workspace tree
	// visible to the principal.
	Tree(principal string, filters TreeFilters) ([]WorkspaceNode, error)

	// DeleteWorkspaceCascade atomically removes a workspace, its
	// collections, and every grant scoped to any of them. Returns
	// ErrNotFound if the workspace does not exist.
	DeleteWorkspaceCascade(workspaceID int64) error
}
