package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/apiclient"
	"github.com/getmockd/mcpconsole/pkg/cliconfig"
	"github.com/getmockd/mcpconsole/pkg/console"
	"github.com/getmockd/mcpconsole/pkg/logging"
)

// Test hooks.
var (
	// clipboardWriter replaces the system clipboard when non-nil.
	clipboardWriter console.ClipboardWriter

	// isInteractive reports whether prompts can be shown.
	isInteractive = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// loadConfig resolves the configuration for this invocation: files and
// environment first, then any flags the user set.
func loadConfig(cmd *cobra.Command) (*cliconfig.CLIConfig, error) {
	cfg, err := cliconfig.LoadAll(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if f := cmd.Flags().Lookup("api-url"); f != nil && f.Changed {
		cfg.APIURL = apiURL
		cfg.Sources["apiUrl"] = cliconfig.SourceFlag
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = logLevel
		cfg.Sources["logLevel"] = cliconfig.SourceFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// session bundles what a backend-facing command needs.
type session struct {
	cfg     *cliconfig.CLIConfig
	log     *slog.Logger
	client  *apiclient.Client
	console *console.Console
	closers []io.Closer
}

// newSession loads the configuration and builds the client and console.
// Logs go to logOut; nil discards them.
func newSession(cmd *cobra.Command, logOut io.Writer) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := logging.Nop()
	if logOut != nil {
		log = logging.New(logging.Settings(cfg.LogLevel, cfg.LogFormat, logOut))
	}
	return buildSession(cfg, log), nil
}

func buildSession(cfg *cliconfig.CLIConfig, log *slog.Logger) *session {
	token := cliconfig.ResolveToken(cfg)
	log.Debug("session configured", "api", cfg.APIURL, "token", token, "timeout", cfg.TimeoutDuration())
	client := apiclient.New(cfg.APIURL,
		apiclient.WithTimeout(cfg.TimeoutDuration()),
		apiclient.WithToken(token),
		apiclient.WithLogger(log.With("component", "apiclient")),
	)
	c := console.New(client,
		console.WithEndpoint(client.Endpoint()),
		console.WithCatalog(cfg.Catalog()),
		console.WithClipboard(clipboardWriter),
		console.WithCopyWindow(cfg.CopyResetDuration()),
		console.WithLogger(log),
	)
	return &session{cfg: cfg, log: log, client: client, console: c}
}

// Close stops timers and closes log files.
func (s *session) Close() {
	s.console.Close()
	for _, c := range s.closers {
		_ = c.Close()
	}
}
