// Package main provides the workdeckctl CLI for the Workdeck workspace
// management server.
//
// Workdeck organizes work into a two-tier hierarchy of workspaces and
// collections, with a hierarchical access-control engine deciding who can see
// and change what. Collections hold markdown documents, a prompt log with a
// response cache, and a dataset registry.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and the access-control engine
//   - pkg/model: Database models and the permission/scope enums
//   - pkg/identity: Access token minting and validation
//   - pkg/db: Database connection utilities
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the workdeckctl CLI:
//
//	# Generate a token signing key
//	head -c 32 /dev/urandom | base64
//	export WORKDECK_TOKEN_SIGNING_KEY=<the key>
//
//	# Run database migrations
//	workdeckctl db migrate
//
//	# Start the server
//	workdeckctl server
//
//	# Mint an access token for a principal
//	workdeckctl user token alice
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - WORKDECK_TOKEN_SIGNING_KEY: Base64-encoded HMAC key for access tokens
//   - WORKDECK_CONFIG_PATH: Directory holding workdeck.yml (default: /etc/workdeck/config)
//   - WORKDECK_LOG_LEVEL: Log level (debug enables SQL logging)
//   - WORKDECK_MIGRATIONS_PATH: Migration files directory for non-embedded builds (default: db/migrations)
//   - PORT: Server port (default: 8000)
package main
