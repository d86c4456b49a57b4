package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/cli/internal/output"
	"github.com/getmockd/mcpconsole/pkg/console"
)

var deleteYes bool

// confirmDelete asks before deleting. Replaced in tests.
var confirmDelete = func(id string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title("Are you sure you want to delete this MCP instance?").
		Description(id).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

var deleteCmd = &cobra.Command{
	Use:     "delete <instance-id>",
	Aliases: []string{"rm"},
	Short:   "Delete an MCP instance",
	Long: `Delete an MCP instance by ID.

Asks for confirmation in a terminal. Use --yes in scripts.`,
	Example: `  mcpconsole delete 1
  mcpconsole delete 1 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !deleteYes {
		if !isInteractive() {
			return ErrConfirmRequired
		}
		ok, err := confirmDelete(id)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	s, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.console.Delete(cmd.Context(), id); err != nil {
		switch {
		case errors.Is(err, console.ErrRefreshAfterChange):
			output.Warn(cmd.ErrOrStderr(), "list refresh failed: %s", s.console.Banner())
		case isNotFound(err):
			return errors.New(FormatNotFoundError(id))
		default:
			return errors.New(FormatConnectionError(err))
		}
	}

	if jsonOutput {
		return output.JSON(cmd.OutOrStdout(), map[string]string{"id": id, "status": "deleted"})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted MCP instance: %s\n", id)
	return nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")
}
