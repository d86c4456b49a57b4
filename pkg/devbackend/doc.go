// Package devbackend serves a local implementation of the MCP instance
// backend: GET /mcp, POST /mcp and DELETE /mcp/{id}.
//
// It exists for development and for end-to-end tests of the console. Instances
// live in an internal/storage InstanceStore, in memory or persisted to a JSON
// file. Error responses carry a {"detail": "..."} body.
package devbackend
