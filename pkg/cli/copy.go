package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/cli/internal/output"
	"github.com/getmockd/mcpconsole/pkg/console"
)

var copyCmd = &cobra.Command{
	Use:   "copy <instance-id>",
	Short: "Copy an instance's MCP endpoint to the clipboard",
	Example: `  mcpconsole copy 1`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	id := args[0]

	s, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.loadInstances(cmd); err != nil {
		return err
	}
	if err := s.console.Copy(id); err != nil {
		if errors.Is(err, console.ErrUnknownInstance) {
			return errors.New(FormatNotFoundError(id))
		}
		return err
	}

	inst, _ := s.console.List.Find(id)
	if jsonOutput {
		return output.JSON(cmd.OutOrStdout(), map[string]string{"id": inst.ID, "url": inst.EndpointURL})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Copied: %s\n", inst.EndpointURL)
	return nil
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
