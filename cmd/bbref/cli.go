package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/bbref"
	"github.com/fwojciec/bbref/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Roster bbref.RosterService
	Cache  *sqlite.TableCache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	NoCache  bool          `help:"Always fetch fresh pages instead of using the local cache"`
	CacheTTL time.Duration `name:"cache-ttl" default:"24h" help:"How long cached tables stay fresh"`
	Verbose  bool          `short:"v" help:"Log requests and lookups to stderr"`
	Browser  bool          `help:"Load pages in headless Chrome instead of plain HTTP"`

	Roster     RosterCmd     `cmd:"" help:"Show a team's 40-man roster"`
	Batting    BattingCmd    `cmd:"" help:"Show position players in a team's depth chart"`
	Pitching   PitchingCmd   `cmd:"" help:"Show pitchers in a team's depth chart"`
	Teams      TeamsCmd      `cmd:"" help:"List active team abbreviations"`
	ClearCache ClearCacheCmd `cmd:"" name:"clear-cache" help:"Remove all cached tables"`
}

// RosterCmd is the "roster" subcommand.
type RosterCmd struct {
	Team   string `arg:"" help:"Three-letter team abbreviation, e.g. WSN"`
	Format string `short:"f" enum:"table,csv,json,markdown" default:"table" help:"Output format (table, csv, json, markdown)"`
}

// DepthChartFlags are shared by the batting and pitching subcommands.
type DepthChartFlags struct {
	Team     string `arg:"" help:"Three-letter team abbreviation, e.g. WSN"`
	MinLevel string `short:"l" name:"min-level" help:"Lowest level to include: MAJ, AAA, AA, HIGH_A, LOW_A or ROK (default MAJ)"`
	Format   string `short:"f" enum:"table,csv,json,markdown" default:"table" help:"Output format (table, csv, json, markdown)"`
}

// BattingCmd is the "batting" subcommand.
type BattingCmd struct {
	DepthChartFlags `embed:""`
}

// PitchingCmd is the "pitching" subcommand.
type PitchingCmd struct {
	DepthChartFlags `embed:""`
}

// TeamsCmd is the "teams" subcommand.
type TeamsCmd struct {
	Format string `short:"f" enum:"table,csv,json,markdown" default:"table" help:"Output format (table, csv, json, markdown)"`
}

// ClearCacheCmd is the "clear-cache" subcommand.
type ClearCacheCmd struct{}
