package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bbref"
	"github.com/fwojciec/bbref/bref"
	"github.com/fwojciec/bbref/goquery"
	bbhttp "github.com/fwojciec/bbref/http"
	"github.com/fwojciec/bbref/rod"
	bbslog "github.com/fwojciec/bbref/slog"
	"github.com/fwojciec/bbref/sqlite"
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
	// Cache database path. Set before calling Run().
	CachePath string

	// SQLite database backing the table cache.
	DB *sqlite.DB

	// Fetcher used by the roster service. Created by Run when nil.
	Fetcher bbref.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		m.Fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bbref"),
		kong.Description("Look up MLB rosters and organization depth charts on baseball-reference.com."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bbref --help' to see available commands")
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
	defer m.Close()

	command := kongCtx.Command()
	if command == "teams" {
		return kongCtx.Run(deps)
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if command == "clear-cache" || !cli.NoCache {
		if err := os.MkdirAll(filepath.Dir(m.CachePath), 0755); err != nil {
			fmt.Fprintf(stderr, "Hint: Set BBREF_CACHE to use a different cache path, or pass --no-cache\n")
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set BBREF_CACHE to use a different cache path, or pass --no-cache\n")
			return fmt.Errorf("failed to open cache at %q: %w", m.CachePath, err)
		}
		deps.Cache = sqlite.NewTableCache(m.DB, sqlite.WithTTL(cli.CacheTTL))
	}

	if command == "clear-cache" {
		return kongCtx.Run(deps)
	}

	if m.Fetcher == nil {
		if cli.Browser {
			fetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			m.Fetcher = fetcher
		} else {
			m.Fetcher = bbhttp.NewFetcher()
		}
	}
	var fetcher bbref.Fetcher = m.Fetcher
	if logger != nil {
		fetcher = bbslog.NewLoggingFetcher(fetcher, logger)
	}

	var roster bbref.RosterService = bref.NewService(fetcher, goquery.NewParser())
	if deps.Cache != nil {
		roster = bref.NewCachedService(roster, deps.Cache)
	}
	if logger != nil {
		roster = bbslog.NewLoggingRosterService(roster, logger)
	}
	deps.Roster = roster

	return kongCtx.Run(deps)
}

func defaultCachePath() string {
	if path := os.Getenv("BBREF_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "bbref-cache.db"
	}
	return filepath.Join(home, ".bbref", "cache.db")
}
