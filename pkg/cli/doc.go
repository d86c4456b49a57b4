// Package cli provides the command-line interface for mcpconsole.
//
// Commands:
//   - (no command): the interactive console
//   - list: show MCP instances, optionally filtered with --where or --match
//   - create: create an instance from flags or an interactive form
//   - delete: delete an instance after confirmation
//   - copy: copy an instance's MCP endpoint to the clipboard
//   - categories: show the tables offered when creating an instance
//   - config: show the effective configuration and where each value came from
//   - dev-backend: run a local backend for development
//   - help: extended help topics
//   - version: show build information
//
// Every command that talks to the backend goes through a console.Console,
// so the CLI and the terminal UI share one behavior.
package cli
