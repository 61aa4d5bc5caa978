package bbref

import "time"

// MostRecentSeason returns the latest season with regular season games as
// of now. Before March 15 that is the previous calendar year.
func MostRecentSeason(now time.Time) int {
	opening := time.Date(now.Year(), time.March, 15, 0, 0, 0, 0, now.Location())
	if now.Before(opening) {
		return now.Year() - 1
	}
	return now.Year()
}
