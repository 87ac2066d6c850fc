package shell

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// TUIShell runs the session as a Bubble Tea program.
type TUIShell struct {
	opts Options
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func (s *TUIShell) Run(ctx context.Context) error {
	model := NewModel(s.opts.Handler, s.opts.Prompt,
		WithLogger(s.opts.Logger),
		WithGreeting(s.opts.Greeting),
		WithHistoryLimit(s.opts.HistoryLimit),
	)
	p := tea.NewProgram(model,
		tea.WithInput(s.opts.In),
		tea.WithOutput(s.opts.Out),
		tea.WithContext(ctx),
	)

	s.opts.Logger.Info("shell.started", "mode", "tui")
	_, err := p.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	s.opts.Logger.Info("shell.stopped", "reason", "quit")
	return nil
}
