package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bbref"
)

// ParseDepthChartTables collects players from the given position-group
// tables in order, keeping those whose highest level this season is at
// minLevel or above. Tables absent from the page are skipped. A player
// listed in several groups appears once, under the first.
func ParseDepthChartTables(html string, tableIDs []string, minLevel bbref.Level) (*bbref.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bbref.Errorf(bbref.EINVALID, "failed to parse HTML: %v", err)
	}

	var result *bbref.Table
	var levelIndex, nameIndex int

	for _, id := range tableIDs {
		table := FindTable(doc, id)
		if table == nil {
			continue
		}

		// Every position group shares one header layout.
		if result == nil {
			cols := append(headings(table), bbref.ColumnStatus, bbref.ColumnMLBID)
			levelIndex = indexOf(cols, LevelHeading)
			nameIndex = indexOf(cols, NameHeading)
			if levelIndex < 0 || nameIndex < 0 {
				return nil, bbref.Errorf(bbref.EINTERNAL, "table %q is missing %q or %q heading", id, LevelHeading, NameHeading)
			}
			result = bbref.NewTable(cols)
		}

		width := len(result.Columns)
		err := eachPlayerRow(table, func(cells []string, link *goquery.Selection) error {
			row := make([]string, width)
			copy(row, cells[:min(len(cells), width-2)])
			row[width-2] = string(PlayerStatus(link))
			row[nameIndex] = bbref.SanitizePlayerName(row[nameIndex])

			level, err := bbref.HighestLevel(row[levelIndex])
			if err != nil {
				return fmt.Errorf("player %q: %w", row[nameIndex], err)
			}
			if level.Rank() > minLevel.Rank() {
				return nil
			}

			href, _ := link.Attr("href")
			row[width-1] = bbref.MLBIDFromLink(href)
			result.AppendRow(row)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if result == nil {
		return bbref.NewTable([]string{}), nil
	}

	result.RenameColumn(PositionSummaryNBSP, PositionSummaryHeading)
	result.DropDuplicates(bbref.ColumnMLBID)

	return result, nil
}

// PlayerStatus classifies a player's roster status from the markup around
// the player link. A link wrapped in <strong> marks the active roster;
// otherwise the <small> note next to the link decides.
func PlayerStatus(link *goquery.Selection) bbref.Status {
	parent := link.Parent()
	if goquery.NodeName(parent) == "strong" {
		return bbref.StatusActive
	}

	small := parent.Find("small").First()
	if small.Length() == 0 {
		return bbref.StatusNone
	}
	return bbref.StatusFromAnnotation(small.Text())
}

func indexOf(values []string, s string) int {
	for i, v := range values {
		if v == s {
			return i
		}
	}
	return -1
}
