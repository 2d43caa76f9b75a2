package model

import "time"

// Grant is a stored access-control record. The composite primary key
// enforces the uniqueness invariant: at most one grant per
// (scope, resource, principal, permission); re-granting bumps UpdatedAt.
type Grant struct {
	Scope       Scope      `gorm:"column:scope;primaryKey"`
	ResourceID  int64      `gorm:"column:resource_id;primaryKey"`
	PrincipalID string     `gorm:"column:principal_id;primaryKey"`
	Permission  Permission `gorm:"column:permission;primaryKey"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (Grant) TableName() string {
	return "access_grants"
}

// Ref returns the resource reference the grant applies to.
func (g Grant) Ref() Ref {
	return Ref{Scope: g.Scope, ID: g.ResourceID}
}
