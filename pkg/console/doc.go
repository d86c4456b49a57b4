// Package console holds the client-side state of the MCP instance console.
//
// Three controllers each own one piece of state:
//
//   - ListController: the authoritative instance list and its
//     Loading/Loaded/Failed status.
//   - FormController: the create dialog's draft fields and lifecycle.
//   - CopyFeedback: the single "just copied" mark with its timed reset.
//
// They never share mutable variables. The form asks for a list refresh
// through the Refresher interface after a successful create, and Console
// wires the three together with the delete action and the error banner.
//
// Every change to the list comes from a full re-fetch after a confirmed
// write. Nothing is patched locally, so there is nothing to roll back when
// a write fails.
package console
