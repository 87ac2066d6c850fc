package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// PlainShell reads commands line by line and prints each reply.
type PlainShell struct {
	opts Options
}

// Run prints the greeting, then prompts and handles lines until a quit
// reply, end of input, or cancellation.
func (s *PlainShell) Run(ctx context.Context) error {
	w := s.opts.Out
	if s.opts.Greeting != "" {
		_, _ = fmt.Fprintln(w, s.opts.Greeting)
	}
	s.opts.Logger.Info("shell.started", "mode", "plain")

	// Stops the reader goroutine once the session ends.
	scanCtx, stop := context.WithCancel(ctx)
	defer stop()

	lines, errs := scanLines(scanCtx, s.opts.In)
	for {
		_, _ = fmt.Fprint(w, s.opts.Prompt)

		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(w)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				_, _ = fmt.Fprintln(w)
				s.opts.Logger.Info("shell.stopped", "reason", "eof")
				return <-errs
			}
			r := handleLine(s.opts.Handler, s.opts.Logger, line)
			if r.Text != "" {
				_, _ = fmt.Fprintln(w, r.Text)
			}
			if r.Quit {
				s.opts.Logger.Info("shell.stopped", "reason", "quit")
				return nil
			}
		}
	}
}

// scanLines feeds lines from r into the returned channel until EOF or ctx
// is done. Lines have no length limit. The error channel yields the read
// error (or nil) once lines closes.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err == nil || line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case lines <- line:
				case <-ctx.Done():
					errs <- nil
					return
				}
			}
			if errors.Is(err, io.EOF) {
				errs <- nil
				return
			}
			if err != nil {
				errs <- fmt.Errorf("shell: reading input: %w", err)
				return
			}
		}
	}()

	return lines, errs
}
