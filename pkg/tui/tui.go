package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/getmockd/mcpconsole/pkg/console"
)

// Run starts the full-screen UI and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, c *console.Console, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, c), opts...)

	c.Clipboard.OnExpire(func(id string) {
		p.Send(copyExpiredMsg{id: id})
	})
	defer c.Clipboard.OnExpire(nil)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
