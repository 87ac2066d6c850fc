// Package shell runs the interactive command loop, either as a Bubble Tea
// terminal UI or as a plain line-oriented prompt.
package shell

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/smileynet/assistant/internal/command"
	"github.com/smileynet/assistant/internal/logging"
)

// LineHandler executes one line of user input.
type LineHandler interface {
	Handle(line string) command.Reply
}

// Shell runs an interactive session until the user quits, input ends, or
// ctx is cancelled.
type Shell interface {
	Run(ctx context.Context) error
}

// Options configures shell creation.
type Options struct {
	In           io.Reader    // Input source (default: os.Stdin).
	Out          io.Writer    // Output destination (default: os.Stdout).
	Handler      LineHandler  // Required.
	Logger       *slog.Logger // Activity log (default: discard).
	Greeting     string       // Printed once at start; empty prints nothing.
	Prompt       string       // Shown before each line.
	HistoryLimit int          // Transcript lines kept by the TUI; 0 keeps everything.
	ForcePlain   bool         // Force plain text even if TTY.
}

// New returns a TUI shell when both input and output are terminals, or a
// plain shell otherwise. ForcePlain overrides TTY detection.
func New(opts Options) Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return &PlainShell{opts: opts}
	}
	return &TUIShell{opts: opts}
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// handleLine runs line through h and records the outcome in the activity log.
func handleLine(h LineHandler, logger *slog.Logger, line string) command.Reply {
	r := h.Handle(line)
	if r.Cmd == command.Empty {
		return r
	}
	if r.Err != nil {
		logger.Info("command.failed", "cmd", string(r.Cmd), "error", r.Err.Error())
	} else {
		logger.Debug("command.handled", "cmd", string(r.Cmd), "quit", r.Quit)
	}
	return r
}
