package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/cli/internal/output"
	"github.com/getmockd/mcpconsole/pkg/cliconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and where each value came from",
	Long: `Show the effective configuration after merging defaults, config files,
environment variables and flags.

The SOURCE column is one of: default, global, local, file, env, flag.
See 'mcpconsole help config' for the file format.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configEntry is one row of the config listing.
type configEntry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	token := cliconfig.ResolveToken(cfg)
	tokenSource := cfg.Sources["token"]
	if cfg.Token == "" && token != "" {
		tokenSource = cliconfig.GetTokenFilePath()
	}

	categories := strconv.Itoa(cfg.Catalog().Len()) + " tables"
	entries := []configEntry{
		{"apiUrl", cfg.APIURL, sourceOf(cfg, "apiUrl")},
		{"token", maskToken(token), orDefault(tokenSource)},
		{"timeout", formatTimeout(cfg.Timeout), sourceOf(cfg, "timeout")},
		{"logLevel", cfg.LogLevel, sourceOf(cfg, "logLevel")},
		{"logFormat", cfg.LogFormat, sourceOf(cfg, "logFormat")},
		{"copyResetMs", strconv.Itoa(cfg.CopyResetMs), sourceOf(cfg, "copyResetMs")},
		{"categories", categories, sourceOf(cfg, "categories")},
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return output.JSON(out, entries)
	}

	w := output.Table(out)
	fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, e.Value, e.Source)
	}
	return w.Flush()
}

func sourceOf(cfg *cliconfig.CLIConfig, key string) string {
	return orDefault(cfg.Sources[key])
}

func orDefault(source string) string {
	if source == "" {
		return cliconfig.SourceDefault
	}
	return source
}

// maskToken keeps only the last four characters of a token.
func maskToken(token string) string {
	switch {
	case token == "":
		return "(none)"
	case len(token) <= 4:
		return "****"
	default:
		return "****" + token[len(token)-4:]
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func formatTimeout(seconds int) string {
	if seconds == 0 {
		return "none"
	}
	return strconv.Itoa(seconds) + "s"
}
