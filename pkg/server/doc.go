// Package server provides the HTTP server for the Workdeck API.
//
// This package implements the core HTTP server that handles all Workdeck REST
// API requests. It uses gorilla/mux for routing and provides middleware for
// authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, signingKey, "0.0.0.0", "80")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Config: Server configuration
//   - TokenAuth: Bearer token validation middleware
//   - One store per resource family (workspaces, collections, grants, ...)
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all standard Workdeck API endpoints including:
//
//   - /workspaces - Workspace management and the permission-annotated tree
//   - /workspaces/{id}/access - Grants and user listing at workspace scope
//   - /collections/{id} - Collection management beneath a workspace
//   - /collections/{id}/documents - Markdown documents
//   - /collections/{id}/prompts - Prompt log and response cache
//   - /collections/{id}/datasets - Dataset registry and upload metadata
//   - /users - Principal directory
//   - /whoami - Token introspection
package server
