package store

// HealthStore abstracts the database liveness check used by the status
// endpoints.
type HealthStore interface {
	Ping() error
}
