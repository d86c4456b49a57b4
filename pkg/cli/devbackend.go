package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/internal/storage"
	"github.com/getmockd/mcpconsole/pkg/devbackend"
	"github.com/getmockd/mcpconsole/pkg/logging"
)

var (
	devAddr         string
	devDataFile     string
	devPublicURL    string
	devStrictTables bool
)

var devBackendCmd = &cobra.Command{
	Use:   "dev-backend",
	Short: "Run a local MCP backend for development",
	Long: `Run a local backend that implements GET/POST /mcp and DELETE /mcp/{id}.

Instances are kept in memory, or in a JSON file with --data. Each created
instance gets a 12-character id and an endpoint URL of the form
<public-url>/llm/mcp/?mcp_name=<id>.`,
	Example: `  # In-memory, on localhost:8000
  mcpconsole dev-backend

  # Persist to a file and only accept configured tables
  mcpconsole dev-backend --data data/mcp.json --strict-tables`,
	Args: cobra.NoArgs,
	RunE: runDevBackend,
}

func runDevBackend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(logging.Settings(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()))

	var store storage.InstanceStore = storage.NewInMemoryInstanceStore()
	if devDataFile != "" {
		fileStore, err := storage.OpenFileInstanceStore(devDataFile)
		if err != nil {
			return err
		}
		store = fileStore
	}

	opts := []devbackend.Option{devbackend.WithLogger(log)}
	if devPublicURL != "" {
		opts = append(opts, devbackend.WithPublicURL(devPublicURL))
	}
	if devStrictTables {
		opts = append(opts, devbackend.WithCatalog(cfg.Catalog()))
	}

	srv := devbackend.New(store, opts...)
	out := cmd.OutOrStdout()
	return srv.ListenAndServe(cmd.Context(), devAddr, func(addr net.Addr) {
		fmt.Fprintf(out, "MCP backend listening on http://%s (%d instances)\n", addr, store.Count())
		fmt.Fprintln(out, "Press Ctrl+C to stop")
	})
}

func init() {
	rootCmd.AddCommand(devBackendCmd)
	devBackendCmd.Flags().StringVar(&devAddr, "addr", devbackend.DefaultAddr, "Listen address")
	devBackendCmd.Flags().StringVar(&devDataFile, "data", "", "JSON file to persist instances to (default: in memory)")
	devBackendCmd.Flags().StringVar(&devPublicURL, "public-url", "", "Base URL for instance endpoints (default: derived from the request)")
	devBackendCmd.Flags().BoolVar(&devStrictTables, "strict-tables", false, "Reject tables that are not in the configured catalog")
}
