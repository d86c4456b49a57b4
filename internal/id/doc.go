// Package id generates identifiers for MCP instances created by the
// development backend.
//
//   - UUID: a random RFC 4122 v4 UUID, used for request correlation.
//   - Instance: a 12-character alphanumeric instance id, short enough to
//     read aloud and safe in the mcp_name query parameter.
package id
