package store

import "github.com/workdeck/workdeck/pkg/model"

// DocumentsStore abstracts collection documentation storage.
type DocumentsStore interface {
	CreateDocument(d *model.Document) error
	FetchDocument(id int64) (*model.Document, error)
	ListDocuments(collectionID int64) ([]model.Document, error)
	UpdateDocument(id int64, name, body, configurationDetails string) (*model.Document, error)
	DeleteDocument(id int64) error
}
