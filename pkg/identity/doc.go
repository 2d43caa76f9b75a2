// Package identity provides authenticated identity management for Workdeck requests.
//
// This package separates the concept of an authenticated identity from the
// raw token parsing. An Identity combines token claims (principal, timestamps)
// with request-specific context (remote IP).
//
// # Basic Usage
//
//	// Create identity from validated token claims
//	id, err := identity.FromClaims(claims)
//
//	// Add request context
//	id.WithRemoteIP(clientIP)
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//
// The principal is the opaque identifier carried in the token's subject
// claim. Authorization decisions compare it against workspace ownership and
// grant rows; the server attaches no further meaning to it.
package identity
