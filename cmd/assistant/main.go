package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/assistant"
	"github.com/smileynet/assistant/internal/command"
	"github.com/smileynet/assistant/internal/config"
	"github.com/smileynet/assistant/internal/contact"
	"github.com/smileynet/assistant/internal/logging"
	"github.com/smileynet/assistant/internal/shell"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for assistant.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Chat    ChatCmd          `cmd:"" default:"withargs" help:"Start an interactive contact session (default)."`
}

// ChatCmd runs the interactive contact manager.
type ChatCmd struct {
	NoTUI   bool   `help:"Force plain text output even if the terminal supports the TUI." default:"false"`
	Config  string `help:"Project config file." default:".assistant/config.yaml"`
	EnvFile string `help:"Environment file loaded before config." default:".env"`
	LogFile string `help:"Write the activity log to this file."`
	Debug   bool   `help:"Log every handled command to the log file (requires --log-file or log.file)." default:"false"`
}

// errDebugWithoutLog rejects --debug when the log would be discarded.
var errDebugWithoutLog = errors.New("chat: --debug requires --log-file or log.file")

// setupError marks failures that happen before the session starts.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// loadConfig loads .env, then layered config from user and project paths,
// then env overrides.
func (c *ChatCmd) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(c.EnvFile); err != nil {
		return nil, err
	}
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/assistant/config.yaml"),
		c.Config,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags applies CLI flag overrides on top of cfg.
func (c *ChatCmd) applyFlags(cfg *config.Config) {
	if c.NoTUI {
		cfg.Shell.NoTUI = true
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
}

// Run executes the chat command.
func (c *ChatCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return &setupError{fmt.Errorf("chat: %w", err)}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.run(ctx, os.Stdin, os.Stdout, cfg)
}

// run builds the session from cfg and runs it, enabling testable wiring.
func (c *ChatCmd) run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config) error {
	c.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return &setupError{fmt.Errorf("chat: %w", err)}
	}
	if c.Debug && cfg.Log.File == "" {
		return &setupError{errDebugWithoutLog}
	}

	logger, closeLog, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return &setupError{fmt.Errorf("chat: %w", err)}
	}
	defer func() { _ = closeLog() }()

	helpText, err := assistant.LoadHelp(cfg.Shell.HelpDir)
	if err != nil {
		return &setupError{fmt.Errorf("chat: %w", err)}
	}

	handler := command.NewHandler(contact.NewAddressBook(), command.WithHelp(helpText))
	sh := shell.New(shell.Options{
		In:           in,
		Out:          out,
		Handler:      handler,
		Logger:       logger,
		Greeting:     cfg.Shell.Greeting,
		Prompt:       cfg.Shell.Prompt,
		HistoryLimit: cfg.Shell.HistoryLimit,
		ForcePlain:   cfg.Shell.NoTUI,
	})

	err = sh.Run(ctx)
	if errors.Is(err, context.Canceled) {
		// Ctrl+C ends the session like exit does.
		return nil
	}
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitSession = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitSession
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("assistant"),
		kong.Description("Interactive contact manager."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
