package store

import "github.com/workdeck/workdeck/pkg/model"

// WorkspacesStore abstracts workspace CRUD. Deletion goes through
// AccessStore.DeleteWorkspaceCascade; there is no plain delete.
type WorkspacesStore interface {
	// CreateWorkspace inserts a workspace and fills in its ID.
	CreateWorkspace(ws *model.Workspace) error

	// FetchWorkspace retrieves a workspace by id, or ErrNotFound.
	FetchWorkspace(id int64) (*model.Workspace, error)

	// UpdateWorkspace updates the mutable fields (name, kind). The owner
	// is never reassigned.
	UpdateWorkspace(id int64, name, kind string) (*model.Workspace, error)
}
