package bbref

// RosterParser turns baseball-reference pages into tables.
type RosterParser interface {
	// ParseActiveRoster extracts the 40-man roster from a team season page.
	// Returns ENOTFOUND if the page has no roster table.
	ParseActiveRoster(html string) (*Table, error)

	// ParseDepthChart extracts the players at minLevel or above from an
	// organization depth chart page. Position-group tables missing from
	// the page are skipped.
	ParseDepthChart(html string, playerType PlayerType, minLevel Level) (*Table, error)
}
