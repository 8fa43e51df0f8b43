package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/subextract"
	"github.com/fwojciec/subextract/clipboard"
	"github.com/fwojciec/subextract/goquery"
	"github.com/fwojciec/subextract/lipgloss"
	subslog "github.com/fwojciec/subextract/slog"
	"github.com/pkg/browser"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Nil fields are wired with the
	// system implementations.
	Clipboard   subextract.Clipboard
	OpenBrowser func(url string) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("subextract"),
		kong.Description("Extract wildcard subdomains (*.example.com) from text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'subextract --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	clip := m.Clipboard
	if clip == nil {
		clip = clipboard.NewClipboard()
	}
	deps.ClipboardAvailable = true
	if c, ok := clip.(interface{ Available() bool }); ok {
		deps.ClipboardAvailable = c.Available()
	}
	deps.Clipboard = subslog.NewLoggingClipboard(clip, deps.Logger)
	deps.TextExtractor = goquery.NewTextExtractor()
	deps.Notifier = lipgloss.NewNotifier(stderr)

	deps.OpenBrowser = m.OpenBrowser
	if deps.OpenBrowser == nil {
		browser.Stdout = stderr
		browser.Stderr = stderr
		deps.OpenBrowser = browser.OpenURL
	}

	return kongCtx.Run(deps)
}
