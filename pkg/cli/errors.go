package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getmockd/mcpconsole/pkg/apiclient"
)

// Common CLI errors
var (
	ErrNameRequired     = errors.New("instance name is required (use --name, or run in a terminal for the interactive form)")
	ErrConfirmRequired  = errors.New("refusing to delete without confirmation; pass --yes")
	ErrCategoryRequired = errors.New("at least one table is required (use --category)")
)

// FormatConnectionError returns a user-friendly error message for connection failures.
func FormatConnectionError(err error) string {
	var tErr *apiclient.TransportError
	if errors.As(err, &tErr) {
		return fmt.Sprintf(`Error: %s

Suggestions:
  • Start a local backend: mcpconsole dev-backend
  • Check the backend URL with: mcpconsole config
  • Override it with --api-url or MCPCONSOLE_API_URL`, tErr.Error())
	}
	return err.Error()
}

// FormatNotFoundError returns a user-friendly error message for not found errors.
func FormatNotFoundError(id string) string {
	return fmt.Sprintf(`Error: MCP instance not found: %s

Suggestions:
  • Check the ID with: mcpconsole list
  • Verify you're connected to the right backend: mcpconsole config`, id)
}

func isNotFound(err error) bool {
	var bErr *apiclient.BackendError
	return errors.As(err, &bErr) && bErr.Status == http.StatusNotFound
}
