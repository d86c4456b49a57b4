package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/cli/internal/output"
	"github.com/getmockd/mcpconsole/pkg/classify"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

var (
	listWhere string
	listMatch string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List MCP instances",
	Long: `List all MCP instances known to the backend.

Each instance is classified by how many tables it may access:
  A = 1 table (blue), B = 2 (purple), C = 3 (green), D = 4 (amber), E = 5+ (pink)`,
	Example: `  # List all instances
  mcpconsole list

  # Only instances whose name starts with "Sales"
  mcpconsole list --match 'Sales*'

  # Instances that may read HR, or that span three or more tables
  mcpconsole list --where '"HR" in tables || count >= 3'

  # As JSON
  mcpconsole list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// listItem is the JSON shape of one listed instance.
type listItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	AllowedTables []string `json:"allowedTables"`
	Scheme        string   `json:"scheme"`
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := newInstanceFilter(listWhere, listMatch)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	instances, err := s.loadInstances(cmd)
	if err != nil {
		return err
	}
	instances, err = filter.Apply(instances)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		items := make([]listItem, 0, len(instances))
		for _, inst := range instances {
			tables := inst.PermittedCategories
			if tables == nil {
				tables = []string{}
			}
			items = append(items, listItem{
				ID:            inst.ID,
				Name:          inst.Name,
				Description:   inst.Description,
				URL:           inst.EndpointURL,
				AllowedTables: tables,
				Scheme:        classify.ForInstance(inst).Name,
			})
		}
		return output.JSON(out, items)
	}

	if len(instances) == 0 {
		fmt.Fprintln(out, "No MCP instances found.")
		return nil
	}

	w := output.Table(out)
	fmt.Fprintln(w, "ID\tNAME\tSCHEME\tTABLES\tURL")
	for _, inst := range instances {
		scheme := classify.ForInstance(inst)
		fmt.Fprintf(w, "%s\t%s\t%s (%s)\t%s\t%s\n",
			inst.ID, inst.Name, scheme.Name, scheme.Tone,
			strings.Join(inst.PermittedCategories, ","), inst.EndpointURL)
	}
	return w.Flush()
}

// loadInstances refreshes the console list and returns it.
func (s *session) loadInstances(cmd *cobra.Command) ([]instance.Instance, error) {
	if err := s.console.Refresh(cmd.Context()); err != nil {
		if msg := FormatConnectionError(err); msg != err.Error() {
			return nil, errors.New(msg)
		}
		return nil, errors.New(s.console.Banner())
	}
	return s.console.List.Snapshot().Instances, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listWhere, "where", "", "Filter expression over id, name, description, url, tables, count, scheme")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Glob pattern matched against the instance name")
}
