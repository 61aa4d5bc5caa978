package mock

import "github.com/fwojciec/bbref"

var _ bbref.RosterParser = (*RosterParser)(nil)

// RosterParser is a mock implementation of bbref.RosterParser.
type RosterParser struct {
	ParseActiveRosterFn func(html string) (*bbref.Table, error)
	ParseDepthChartFn   func(html string, playerType bbref.PlayerType, minLevel bbref.Level) (*bbref.Table, error)
}

func (p *RosterParser) ParseActiveRoster(html string) (*bbref.Table, error) {
	return p.ParseActiveRosterFn(html)
}

func (p *RosterParser) ParseDepthChart(html string, playerType bbref.PlayerType, minLevel bbref.Level) (*bbref.Table, error) {
	return p.ParseDepthChartFn(html, playerType, minLevel)
}
