package model

import "time"

// Dataset is a managed table definition attached to a collection.
type Dataset struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID int64     `gorm:"column:collection_id;not null"`
	Name         string    `gorm:"column:table_name;not null;index"`
	Description  string    `gorm:"column:table_description"`
	ColumnDetail string    `gorm:"column:column_detail"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Dataset) TableName() string {
	return "datasets"
}

// DatasetUpload records one month's upload for a dataset. Only metadata is
// stored here; the file itself lives in external object storage and is
// reachable through DownloadLink.
type DatasetUpload struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	DatasetID    int64     `gorm:"column:dataset_id;not null"`
	MonthYear    string    `gorm:"column:month_year;not null;index"`
	Approved     bool      `gorm:"column:approved;not null;default:false"`
	Filename     string    `gorm:"column:filename;not null"`
	DownloadLink string    `gorm:"column:download_link"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (DatasetUpload) TableName() string {
	return "dataset_uploads"
}
