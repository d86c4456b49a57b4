package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/cli/internal/output"
	"github.com/getmockd/mcpconsole/pkg/classify"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"tables"},
	Short:   "Show the tables offered when creating an instance",
	Long: `Show the configured table catalog and the card color schemes.

The catalog comes from the "categories" key of the config file, or the
built-in Sales, HR, Inventory, Finance and Support tables.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog := cfg.Catalog()
	out := cmd.OutOrStdout()

	if jsonOutput {
		return output.JSON(out, catalog.All())
	}

	w := output.Table(out)
	fmt.Fprintln(w, "ID\tLABEL\tDESCRIPTION")
	for _, cat := range catalog.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cat.ID, cat.DisplayLabel(), cat.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Schemes:")
	w = output.Table(out)
	for _, s := range classify.All() {
		fmt.Fprintf(w, "  %s\t%s tables\t%s\n", s.Name, s.Range(), s.Tone)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
