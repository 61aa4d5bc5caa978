package main

import "github.com/fwojciec/bbref"

// Run executes the teams command.
func (c *TeamsCmd) Run(deps *Dependencies) error {
	table := bbref.NewTable([]string{"Team", "Organization"})
	for _, team := range bbref.ActiveTeams() {
		table.AppendRow([]string{team.Code, team.Slug})
	}
	return writeTable(deps.Stdout, table, c.Format)
}
