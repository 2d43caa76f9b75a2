// Package model defines the database models for workdeck.
//
// This package contains GORM models that map to the workdeck PostgreSQL
// schema, plus the closed Permission/Scope enums used by the access-control
// engine.
//
// # Core Models
//
//   - User: principal directory entry (display name, email)
//   - Workspace: outer-tier resource, owned by exactly one principal
//   - Collection: inner-tier resource, belongs to one workspace
//   - Grant: a stored (scope, resource, principal, permission) record
//   - Document: markdown documentation attached to a collection
//   - Prompt / PromptResponse: analytics prompt log and response cache
//   - Dataset / DatasetUpload: managed table definitions and upload metadata
//
// # Database Schema
//
// The database uses PostgreSQL with the following key tables:
//
//   - users: principal directory
//   - workspaces: outer-tier resources
//   - collections: inner-tier resources
//   - access_grants: permission grants, unique per
//     (scope, resource_id, principal_id, permission)
//   - documents, prompts, prompt_responses, datasets, dataset_uploads:
//     collection content
package model
