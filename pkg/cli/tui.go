package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/mcpconsole/pkg/logging"
	"github.com/getmockd/mcpconsole/pkg/tui"
)

var tuiLogFile string

// ErrNoTerminal is returned when the interactive console is started without
// a terminal.
var ErrNoTerminal = errors.New("the interactive console needs a terminal; run 'mcpconsole --help' for scripting commands")

// runTUI opens the full-screen console. The terminal owns stdout, so logs
// are only written when --log-file is given.
func runTUI(cmd *cobra.Command, args []string) error {
	if !isInteractive() {
		return ErrNoTerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logging.Nop()
	var closer io.Closer
	if tuiLogFile != "" {
		log, closer, err = logging.NewFile(tuiLogFile, logging.Settings(cfg.LogLevel, cfg.LogFormat, nil))
		if err != nil {
			return err
		}
	}

	s := buildSession(cfg, log)
	if closer != nil {
		s.closers = append(s.closers, closer)
	}
	defer s.Close()

	s.log.Info("starting console", "api", s.client.Endpoint())
	return tui.Run(cmd.Context(), s.console)
}
