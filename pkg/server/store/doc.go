// Package store defines the storage interfaces consumed by the server
// endpoints.
//
// Each interface abstracts one slice of persistence so that handlers can be
// unit tested against mocks. The gorm subpackage provides the PostgreSQL
// implementations.
//
// AccessStore is the hierarchical access-control engine: permission checks
// with owner bypass and workspace-to-collection inheritance, idempotent
// grant/revoke, access listings, the permission-annotated workspace tree,
// and transactional cascade deletion.
package store
