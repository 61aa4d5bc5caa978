package bbref

import (
	"net/url"
	"path"
	"strings"
)

// BRefHost is the host serving baseball-reference.com pages.
const BRefHost = "www.baseball-reference.com"

// mlbIDParams are query parameters known to carry an MLBAM player ID.
var mlbIDParams = []string{"mlb_ID", "mlbam_id", "id"}

// PlayerIDs holds the identifiers derived from a player's link. Exactly one
// of the two is populated for a well-formed link.
type PlayerIDs struct {
	BRefID string
	MLBID  string
}

// PlayerIDsFromLink classifies a player link. Links to a baseball-reference
// player page (/players/s/sotoju01.shtml) yield a BRefID; any other link,
// typically an MLB profile for players who have not reached the majors,
// yields a numeric MLBID.
func PlayerIDsFromLink(href string) PlayerIDs {
	if id := brefIDFromLink(href); id != "" {
		return PlayerIDs{BRefID: id}
	}
	return PlayerIDs{MLBID: MLBIDFromLink(href)}
}

func brefIDFromLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.Host != "" && !strings.HasSuffix(u.Host, "baseball-reference.com") {
		return ""
	}
	if !strings.HasPrefix(u.Path, "/players/") {
		return ""
	}
	base := path.Base(u.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}

// MLBIDFromLink extracts the numeric MLBAM player ID from a link, looking
// first at known query parameters and then at a trailing run of digits in
// the path. Returns an empty string when no ID is present.
func MLBIDFromLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	q := u.Query()
	for _, key := range mlbIDParams {
		if v := q.Get(key); isDigits(v) {
			return v
		}
	}

	return trailingDigits(strings.TrimSuffix(u.Path, "/"))
}

func trailingDigits(s string) string {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[i:]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return trailingDigits(s) == s
}
