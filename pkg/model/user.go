package model

import "time"

// User is a principal directory entry. Authentication is handled by an
// external identity provider; this table only supplies display names and
// emails for access listings. The ID is the opaque principal identifier
// carried in tokens.
type User struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
