package store

import "github.com/workdeck/workdeck/pkg/model"

// CollectionsStore abstracts collection CRUD.
type CollectionsStore interface {
	// CreateCollection inserts a collection and fills in its ID.
	CreateCollection(c *model.Collection) error

	// FetchCollection retrieves a collection by id, or ErrNotFound.
	FetchCollection(id int64) (*model.Collection, error)

	// ListCollections returns the collections under a workspace.
	ListCollections(workspaceID int64) ([]model.Collection, error)

	// UpdateCollection updates name and, when active is non-nil, the
	// active flag. WorkspaceID is immutable.
	UpdateCollection(id int64, name string, active *bool) (*model.Collection, error)

	// DeactivateCollection soft-deletes a collection by clearing its
	// active flag. Grants are untouched.
	DeactivateCollection(id int64) (*model.Collection, error)

	// DeleteCollection removes the collection and its own grants in one
	// transaction. It never touches workspace-scope grants.
	DeleteCollection(id int64) error
}
