package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/cli/internal/flags"
	"github.com/getmockd/mcpconsole/pkg/cli/internal/output"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

var (
	createName        string
	createDescription string
	createCategories  flags.StringSlice
)

// promptDraft asks for the instance fields interactively. Replaced in tests.
var promptDraft = func(catalog *instance.Catalog, draft *instance.Draft) error {
	options := make([]huh.Option[string], 0, catalog.Len())
	for _, cat := range catalog.All() {
		options = append(options, huh.NewOption(cat.DisplayLabel(), cat.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("e.g. Sales Analytics MCP").
				Value(&draft.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Placeholder("What is this MCP instance for?").
				Value(&draft.Description),
			huh.NewMultiSelect[string]().
				Title("Allowed Tables").
				Options(options...).
				Value(&draft.PermittedCategories).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return errors.New("select at least one table")
					}
					return nil
				}),
		),
	)
	return form.Run()
}

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"new"},
	Short:   "Create an MCP instance",
	Long: `Create a new MCP instance with a name, an optional description and the
tables it may query.

Without --name, an interactive form is shown when running in a terminal.`,
	Example: `  # Interactive
  mcpconsole create

  # Scripted
  mcpconsole create --name "Sales MCP" --category Sales --category Finance

  # Comma-separated tables, JSON result
  mcpconsole create --name Ops --category Inventory,Support --json`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	draft := instance.Draft{
		Name:                createName,
		Description:         createDescription,
		PermittedCategories: []string(createCategories),
	}
	if !cmd.Flags().Changed("name") {
		if !isInteractive() {
			return ErrNameRequired
		}
		if err := promptDraft(s.console.Form.Catalog(), &draft); err != nil {
			return err
		}
	}

	catalog := s.console.Form.Catalog()
	for _, id := range draft.PermittedCategories {
		if !catalog.Has(id) {
			output.Warn(cmd.ErrOrStderr(), "table %q is not in the configured catalog", id)
		}
	}

	form := s.console.Form
	form.Open()
	form.SetName(draft.Name)
	form.SetDescription(draft.Description)
	for _, id := range draft.PermittedCategories {
		if !form.Snapshot().IsSelected(id) {
			form.ToggleCategory(id)
		}
	}

	created, err := s.console.Submit(cmd.Context())
	if err != nil {
		var vErr *instance.ValidationError
		if errors.As(err, &vErr) {
			if vErr.Field == "allowedTables" {
				return ErrCategoryRequired
			}
			return err
		}
		return errors.New(FormatConnectionError(err))
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return output.JSON(out, created)
	}
	fmt.Fprintf(out, "Created MCP instance: %s\n", created.ID)
	fmt.Fprintf(out, "  Name:     %s\n", created.Name)
	fmt.Fprintf(out, "  Tables:   %s\n", strings.Join(created.PermittedCategories, ", "))
	fmt.Fprintf(out, "  Endpoint: %s\n", created.EndpointURL)
	if banner := s.console.Banner(); banner != "" {
		output.Warn(cmd.ErrOrStderr(), "list refresh failed: %s", banner)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createName, "name", "", "Instance name")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Instance description")
	createCmd.Flags().Var(&createCategories, "category", "Allowed table (repeatable or comma-separated)")
}
