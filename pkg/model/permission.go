package model

//go:generate go run github.com/dmarkham/enumer -type Permission -trimprefix Permission -transform snake -json -sql -output permission.gen.go

// Permission is a single access-control permission tag.
type Permission int

const (
	PermissionView Permission = iota
	PermissionEdit
	PermissionDelete
	PermissionCreate
	PermissionManageUsers
	PermissionViewUsers
)

// ValidForScope reports whether the permission may be granted at the given
// scope. ManageUsers and ViewUsers are workspace-level concerns and are
// rejected at collection scope.
func (i Permission) ValidForScope(s Scope) bool {
	if s == ScopeCollection {
		switch i {
		case PermissionManageUsers, PermissionViewUsers:
			return false
		}
	}
	return i.IsAPermission()
}

// PermissionsForScope returns the full permission set valid at a scope.
// This is the set an owner implicitly holds, and the set bootstrapped for a
// resource creator.
func PermissionsForScope(s Scope) []Permission {
	if s == ScopeCollection {
		return []Permission{PermissionView, PermissionEdit, PermissionDelete, PermissionCreate}
	}
	return PermissionValues()
}
