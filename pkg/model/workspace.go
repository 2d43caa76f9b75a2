package model

import "time"

// Workspace is the outer-tier resource. OwnerID is set at creation and never
// reassigned; the owner implicitly holds every permission on the workspace
// and on every collection beneath it.
type Workspace struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID   string    `gorm:"column:owner_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	Kind      string    `gorm:"column:kind;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
