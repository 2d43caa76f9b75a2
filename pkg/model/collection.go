package model

import "time"

// Collection is the inner-tier resource. WorkspaceID is immutable after
// creation; a collection belongs to exactly one workspace.
type Collection struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	WorkspaceID int64     `gorm:"column:workspace_id;not null"`
	Name        string    `gorm:"column:name;not null"`
	Active      bool      `gorm:"column:active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Collection) TableName() string {
	return "collections"
}
