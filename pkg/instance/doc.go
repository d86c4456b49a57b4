// Package instance defines the data model shared by every part of the
// console: backend-owned MCP instances, the transient drafts an operator
// fills in before creating one, and the catalog of categories (database
// tables) an instance may be permitted to expose.
//
// Instances are only ever produced by decoding a backend response. The
// console never edits one in place; a changed view of the list always comes
// from a fresh fetch.
package instance
