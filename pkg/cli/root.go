package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	apiURL     string
	jsonOutput bool
	logLevel   string
	configPath string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcpconsole",
	Short: "Manage MCP instances and their table permissions",
	Long: `mcpconsole manages MCP (Model Context Protocol) instances: named endpoints
that let LLMs query a fixed set of database tables.

Run without a command to open the interactive console. Use the subcommands
for scripting.

Configuration can be provided via flags, environment variables, or a
configuration file (.mcpconsolerc.yaml, or ~/.config/mcpconsole/config.yaml).
See 'mcpconsole help config'.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Main()
}

// Main runs the root command and returns the process exit code.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(Main())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (default: http://localhost:8000)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: warn)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .mcpconsolerc.yaml, then the global config)")

	rootCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "Write logs to this file (the terminal is in use)")
}
