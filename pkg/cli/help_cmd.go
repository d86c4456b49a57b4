package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/cli/help"
)

var helpCmd = &cobra.Command{
	Use:   "help [command | topic]",
	Short: "Help about any command or topic",
	Long: `Show help for a command, or one of these topics:

` + help.ListTopics(),
	RunE: runHelp,
}

// runHelp serves topics first and falls back to command help.
func runHelp(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return rootCmd.Help()
	}

	if content, err := help.GetTopic(args[0]); err == nil {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	target, _, err := rootCmd.Find(args)
	if err != nil || target == rootCmd {
		return fmt.Errorf("unknown help topic or command: %s\n\nAvailable topics:\n%s", args[0], help.ListTopics())
	}
	return target.Help()
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}
