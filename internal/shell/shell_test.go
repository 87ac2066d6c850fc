package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/smileynet/assistant/internal/command"
	"github.com/smileynet/assistant/internal/contact"
	"github.com/smileynet/assistant/internal/logging"
)

func newHandler() *command.Handler {
	return command.NewHandler(contact.NewAddressBook())
}

// --- isTTY ---

func TestIsTTY_NonFile(t *testing.T) {
	var buf bytes.Buffer
	if isTTY(&buf) {
		t.Error("non-*os.File should not be a TTY")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if isTTY(f) {
		t.Error("regular file should not be a TTY")
	}
}

// --- New ---

func TestNew_NonTTYReturnsPlain(t *testing.T) {
	s := New(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}, Handler: newHandler()})
	if _, ok := s.(*PlainShell); !ok {
		t.Errorf("New() = %T, want *PlainShell", s)
	}
}

func TestNew_ForcePlain(t *testing.T) {
	s := New(Options{ForcePlain: true, Handler: newHandler()})
	if _, ok := s.(*PlainShell); !ok {
		t.Errorf("New(ForcePlain) = %T, want *PlainShell", s)
	}
}

// --- PlainShell ---

func TestPlainShell_Session(t *testing.T) {
	// Given: a scripted session
	in := strings.NewReader(strings.Join([]string{
		"hello",
		"add John 1234567890",
		"add Jane 12",
		"phone John",
		"exit",
		"all",
	}, "\n"))
	var out bytes.Buffer
	s := New(Options{
		In:       in,
		Out:      &out,
		Handler:  newHandler(),
		Greeting: "Welcome to the assistant bot!",
		Prompt:   "> ",
	})

	// When: the shell runs
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Then: replies appear in order and nothing after exit is handled
	got := out.String()
	want := "Welcome to the assistant bot!\n" +
		"> How can I help you?\n" +
		"> Contact added.\n" +
		"> Invalid phone number format. Must be 10 digits.\n" +
		"> Contact name: John, phones: 1234567890\n" +
		"> Good bye!\n"
	if got != want {
		t.Errorf("output =\n%q\nwant\n%q", got, want)
	}
}

func TestPlainShell_EOFEndsSession(t *testing.T) {
	var out bytes.Buffer
	s := New(Options{In: strings.NewReader("hello\n"), Out: &out, Handler: newHandler(), Prompt: "> "})

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := out.String(), "> How can I help you?\n> \n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPlainShell_EmptyLinesPrintNothing(t *testing.T) {
	var out bytes.Buffer
	s := New(Options{In: strings.NewReader("\n\nexit\n"), Out: &out, Handler: newHandler(), Prompt: "> "})

	if err := s.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "> > > Good bye!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPlainShell_ContextCancel(t *testing.T) {
	// Given: input that never ends
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()
	ctx, cancel := context.WithCancel(context.Background())

	s := New(Options{In: pr, Out: io.Discard, Handler: newHandler(), Prompt: "> "})

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// When: the context is cancelled
	cancel()

	// Then: Run returns the context error
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestPlainShell_ReadError(t *testing.T) {
	readErr := errors.New("tty gone")
	s := New(Options{In: failingReader{err: readErr}, Out: io.Discard, Handler: newHandler()})

	err := s.Run(context.Background())
	if !errors.Is(err, readErr) {
		t.Errorf("Run() error = %v, want %v", err, readErr)
	}
}

func TestPlainShell_LongLineKeepsSession(t *testing.T) {
	// Given: a line far longer than a default scanner token
	long := "phone " + strings.Repeat("a", 70000)
	in := strings.NewReader(long + "\nhello\nexit\n")
	var out bytes.Buffer
	s := New(Options{In: in, Out: &out, Handler: newHandler(), Prompt: "> "})

	// When: the session runs
	err := s.Run(context.Background())

	// Then: the long line gets a normal reply and the session continues
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := "> Contact not found.\n> How can I help you?\n> Good bye!\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPlainShell_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	s := New(Options{In: strings.NewReader("hello\r\nexit"), Out: &out, Handler: newHandler(), Prompt: "> "})

	if err := s.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "> How can I help you?\n> Good bye!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// --- activity log ---

func TestHandleLine_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&buf, slog.LevelDebug))
	h := newHandler()

	handleLine(h, logger, "")
	if buf.Len() != 0 {
		t.Errorf("empty line should not be logged, got %s", buf.String())
	}

	handleLine(h, logger, "add John 1234567890")
	handleLine(h, logger, "delete Nobody")

	log := buf.String()
	if !strings.Contains(log, `"msg":"command.handled"`) || !strings.Contains(log, `"cmd":"add"`) {
		t.Errorf("missing handled record:\n%s", log)
	}
	if !strings.Contains(log, `"msg":"command.failed"`) || !strings.Contains(log, `"cmd":"delete"`) {
		t.Errorf("missing failed record:\n%s", log)
	}
}
