package model

import "strconv"

//go:generate go run github.com/dmarkham/enumer -type Scope -trimprefix Scope -transform snake -json -sql -output scope.gen.go

// Scope identifies which tier of the resource hierarchy a grant or
// permission applies to.
type Scope int

const (
	ScopeWorkspace Scope = iota
	ScopeCollection
)

// Ref is a scope-discriminated reference to a workspace or collection.
// Using a single reference type lets the access engine run one authorization
// code path for both tiers.
type Ref struct {
	Scope Scope
	ID    int64
}

// WorkspaceRef returns a reference to a workspace.
func WorkspaceRef(id int64) Ref {
	return Ref{Scope: ScopeWorkspace, ID: id}
}

// CollectionRef returns a reference to a collection.
func CollectionRef(id int64) Ref {
	return Ref{Scope: ScopeCollection, ID: id}
}

func (r Ref) String() string {
	return r.Scope.String() + ":" + strconv.FormatInt(r.ID, 10)
}
