package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/aocexample/fs"
	"github.com/fwojciec/aocexample/goquery"
	aocslog "github.com/fwojciec/aocexample/slog"
	"github.com/fwojciec/aocexample/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when no page file is given. Set before calling Run().
	Stdin io.Reader

	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by commands that save or read examples.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("aocexample"),
		kong.Description("Extract example inputs from puzzle page HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'aocexample --help' to see available commands")
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

	logger := newLogger(stderr, cli.LogLevel)
	deps.Extractor = aocslog.NewLoggingExtractor(
		goquery.NewExtractor(aocslog.NewLoggingReporter(logger)),
		logger,
	)

	command := kongCtx.Command()
	useDB := strings.HasPrefix(command, "show") || strings.HasPrefix(command, "list") ||
		(strings.HasPrefix(command, "batch") && cli.Batch.DB)

	if useDB {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set AOCEXAMPLE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Records = sqlite.NewRecordService(m.DB)
	}

	if strings.HasPrefix(command, "batch") {
		deps.Pages = fs.NewPageSource(cli.Batch.Dir)
		if cli.Batch.DB {
			deps.Store = sqlite.NewExampleStore(m.DB)
		} else {
			out := filepath.Clean(cli.Batch.Out)
			deps.Store = fs.NewExampleStore(filepath.Dir(out), filepath.Base(out))
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("AOCEXAMPLE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "aocexample.db"
	}
	return filepath.Join(home, ".aocexample", "examples.db")
}

// newLogger returns a text logger writing to w at the given level name.
// Unknown names fall back to warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
