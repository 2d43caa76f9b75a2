package store

import "github.com/workdeck/workdeck/pkg/model"

// DatasetsStore abstracts managed table definitions and upload metadata.
// File contents live in external object storage; only metadata is kept here.
type DatasetsStore interface {
	CreateDataset(d *model.Dataset) error
	FetchDataset(id int64) (*model.Dataset, error)
	ListDatasets(collectionID int64) ([]model.Dataset, error)
	DeleteDataset(id int64) error

	CreateUpload(u *model.DatasetUpload) error
	FetchUpload(id int64) (*model.DatasetUpload, error)
	ListUploads(datasetID int64) ([]model.DatasetUpload, error)
	ApproveUpload(id int64) (*model.DatasetUpload, error)
}
