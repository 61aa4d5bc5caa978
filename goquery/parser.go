package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bbref"
)

var _ bbref.RosterParser = (*Parser)(nil)

// FortyManTableID is the id of the 40-man roster table on team season pages.
const FortyManTableID = "the40man"

// Headings on depth chart tables.
const (
	LevelHeading           = "Lev"
	NameHeading            = "Name"
	PositionSummaryNBSP    = "Pos\u00a0Summary"
	PositionSummaryHeading = "Pos_Summary"
)

// BattingTableIDs are the position-group tables on a batting depth chart.
var BattingTableIDs = []string{
	"Catcher",
	"Infielder2BSS3B",
	"Outfield",
	"FirstBaseDesignatedHitterorPinchHitter",
	"Utility",
}

// PitchingTableIDs are the position-group tables on a pitching depth chart.
var PitchingTableIDs = []string{
	"Right-HandedStarters",
	"Left-HandedStarters",
	"Right-HandedRelievers",
	"Left-HandedRelievers",
	"OtherPitcher",
	"Closers",
}

// Parser extracts roster tables from baseball-reference markup.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseActiveRoster parses a team season page and returns its 40-man roster.
// Each row carries either a player_ID (baseball-reference ID) or an mlb_ID
// for players without a major league page.
func (p *Parser) ParseActiveRoster(html string) (*bbref.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bbref.Errorf(bbref.EINVALID, "failed to parse HTML: %v", err)
	}

	table := FindTable(doc, FortyManTableID)
	if table == nil {
		return nil, bbref.Errorf(bbref.ENOTFOUND, "table %q not found", FortyManTableID)
	}

	cols := append(headings(table), bbref.ColumnBRefID, bbref.ColumnMLBID)
	result := bbref.NewTable(cols)

	err = eachPlayerRow(table, func(cells []string, link *goquery.Selection) error {
		href, _ := link.Attr("href")
		ids := bbref.PlayerIDsFromLink(href)

		// IDs always occupy the last two columns regardless of row width.
		row := make([]string, len(cols))
		copy(row, cells[:min(len(cells), len(cols)-2)])
		row[len(cols)-2] = ids.BRefID
		row[len(cols)-1] = ids.MLBID
		result.AppendRow(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ParseDepthChart parses an organization depth chart page using the table
// set for the player type.
func (p *Parser) ParseDepthChart(html string, playerType bbref.PlayerType, minLevel bbref.Level) (*bbref.Table, error) {
	ids := BattingTableIDs
	if playerType == bbref.PlayerTypePitching {
		ids = PitchingTableIDs
	}
	return ParseDepthChartTables(html, ids, minLevel)
}
