package main

import (
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/fwojciec/bbref"
)

// minTeamSimilarity is the Jaro-Winkler score below which no suggestion
// is offered.
const minTeamSimilarity = 0.7

// SuggestTeam returns the active team code closest to code.
func SuggestTeam(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}

	best, bestScore := "", 0.0
	for _, team := range bbref.ActiveTeams() {
		score := matchr.JaroWinkler(code, team.Code, false)
		if score > bestScore {
			best, bestScore = team.Code, score
		}
	}
	if bestScore < minTeamSimilarity {
		return "", false
	}
	return best, true
}
