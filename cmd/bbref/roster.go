package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/bbref"
)

// Run executes the roster command.
func (c *RosterCmd) Run(deps *Dependencies) error {
	team := strings.ToUpper(c.Team)
	table, err := deps.Roster.ActiveRoster(deps.Ctx, team)
	if err != nil {
		return reportError(deps, team, err)
	}
	return writeTable(deps.Stdout, table, c.Format)
}

// Run executes the batting command.
func (c *BattingCmd) Run(deps *Dependencies) error {
	team := strings.ToUpper(c.Team)
	table, err := deps.Roster.DepthChartBatting(deps.Ctx, team, c.MinLevel)
	if err != nil {
		return reportError(deps, team, err)
	}
	return writeTable(deps.Stdout, table, c.Format)
}

// Run executes the pitching command.
func (c *PitchingCmd) Run(deps *Dependencies) error {
	team := strings.ToUpper(c.Team)
	table, err := deps.Roster.DepthChartPitching(deps.Ctx, team, c.MinLevel)
	if err != nil {
		return reportError(deps, team, err)
	}
	return writeTable(deps.Stdout, table, c.Format)
}

// reportError prints the error and, for an unknown team, the closest
// active team code.
func reportError(deps *Dependencies, team string, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", bbref.ErrorMessage(err))
	if _, ok := bbref.FindTeam(team); !ok {
		if code, ok := SuggestTeam(team); ok {
			fmt.Fprintf(deps.Stderr, "Hint: did you mean %s?\n", code)
		}
		fmt.Fprintln(deps.Stderr, "Use 'bbref teams' to see valid abbreviations.")
	}
	return err
}
