package model

import "time"

// Document is markdown documentation attached to a collection.
type Document struct {
	ID                   int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID         int64     `gorm:"column:collection_id;not null"`
	Name                 string    `gorm:"column:name;not null"`
	Body                 string    `gorm:"column:body"`
	ConfigurationDetails string    `gorm:"column:configuration_details"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
