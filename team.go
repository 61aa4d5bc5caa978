package bbref

import "sort"

// Team is an active MLB club as identified on baseball-reference.com.
type Team struct {
	// Code is the three-letter site abbreviation, e.g. "WSN".
	Code string

	// Slug is the dashed club name used in organization page URLs,
	// e.g. "washington-nationals".
	Slug string
}

var activeTeams = map[string]string{
	"ARI": "arizona-diamondbacks",
	"ATH": "athletics",
	"ATL": "atlanta-braves",
	"BAL": "baltimore-orioles",
	"BOS": "boston-red-sox",
	"CHC": "chicago-cubs",
	"CHW": "chicago-white-sox",
	"CIN": "cincinnati-reds",
	"CLE": "cleveland-guardians",
	"COL": "colorado-rockies",
	"DET": "detroit-tigers",
	"HOU": "houston-astros",
	"KCR": "kansas-city-royals",
	"LAA": "los-angeles-angels",
	"LAD": "los-angeles-dodgers",
	"MIA": "miami-marlins",
	"MIL": "milwaukee-brewers",
	"MIN": "minnesota-twins",
	"NYM": "new-york-mets",
	"NYY": "new-york-yankees",
	"PHI": "philadelphia-phillies",
	"PIT": "pittsburgh-pirates",
	"SDP": "san-diego-padres",
	"SEA": "seattle-mariners",
	"SFG": "san-francisco-giants",
	"STL": "st-louis-cardinals",
	"TBR": "tampa-bay-rays",
	"TEX": "texas-rangers",
	"TOR": "toronto-blue-jays",
	"WSN": "washington-nationals",
}

// FindTeam returns the active team with the given code. Codes are
// case-sensitive.
func FindTeam(code string) (Team, bool) {
	slug, ok := activeTeams[code]
	if !ok {
		return Team{}, false
	}
	return Team{Code: code, Slug: slug}, true
}

// ActiveTeams returns all active teams sorted by code.
func ActiveTeams() []Team {
	teams := make([]Team, 0, len(activeTeams))
	for code, slug := range activeTeams {
		teams = append(teams, Team{Code: code, Slug: slug})
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Code < teams[j].Code })
	return teams
}
