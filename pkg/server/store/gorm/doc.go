// Package gorm provides the PostgreSQL implementations of the store
// interfaces.
//
// The stores issue explicit SQL through gorm's Raw/Exec so that the queries
// backing the access-control engine are visible in one place. Grant
// uniqueness is enforced by the access_grants primary key and an
// ON CONFLICT upsert, not by check-then-insert, so concurrent writers cannot
// produce duplicate rows. Cascade deletion runs in a single transaction.
package gorm
