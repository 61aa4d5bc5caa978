package bbref

import "context"

// PlayerType selects the pitching or batting half of a depth chart.
type PlayerType string

// PlayerType constants, as they appear in organization page URLs.
const (
	PlayerTypeBatting  PlayerType = "batting"
	PlayerTypePitching PlayerType = "pitching"
)

// RosterService returns roster tables for active MLB teams.
type RosterService interface {
	// ActiveRoster returns the 40-man roster of the team for the most
	// recent season. Returns EINVALID if the team is not active.
	ActiveRoster(ctx context.Context, team string) (*Table, error)

	// DepthChartBatting returns position players in the team's system at
	// minLevel or above. An empty minLevel means MAJ.
	// Returns EINVALID for an inactive team or unknown level.
	DepthChartBatting(ctx context.Context, team, minLevel string) (*Table, error)

	// DepthChartPitching is DepthChartBatting for pitchers.
	DepthChartPitching(ctx context.Context, team, minLevel string) (*Table, error)
}

// TableCache memoizes tables by key.
type TableCache interface {
	// GetTable returns the cached table. Returns ENOTFOUND on a miss,
	// including when the entry has expired.
	GetTable(ctx context.Context, key string) (*Table, error)

	// SetTable stores a table, replacing any existing entry.
	SetTable(ctx context.Context, key string, table *Table) error
}
