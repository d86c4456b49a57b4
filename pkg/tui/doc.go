// Package tui is the interactive terminal front end of mcpconsole.
//
// It renders a console.Console with Bubble Tea: one card per MCP instance,
// bordered and tinted by its classify scheme, plus a create dialog, a
// delete confirmation and the error banner.
//
// # Keys
//
// List view:
//
//	↑/k ↓/j   move the selection
//	r         refresh the list
//	n         open the create dialog
//	c         copy the selected endpoint
//	d         delete the selected instance (asks y/n)
//	esc       dismiss the error banner
//	q         quit
//
// Create dialog:
//
//	tab       next field (name, description, tables)
//	space     toggle the highlighted table
//	enter     create
//	esc       cancel and clear the dialog
//
// Backend calls run as tea.Cmds so the UI never blocks on the network.
package tui
