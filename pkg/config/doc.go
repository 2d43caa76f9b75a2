// Package config provides configuration management for Workdeck.
//
// This package handles loading and validating Workdeck server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - WORKDECK_TOKEN_SIGNING_KEY: Access token signing key
//   - WORKDECK_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
