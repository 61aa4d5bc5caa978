package bbref

import (
	"strconv"
	"strings"
)

// Level is a tier of organized baseball. Lower values are higher levels,
// so MAJ < AAA < ... < ROK.
type Level int

// Level constants in rank order.
const (
	LevelMAJ   Level = 1
	LevelAAA   Level = 2
	LevelAA    Level = 3
	LevelHighA Level = 4
	LevelLowA  Level = 5
	LevelROK   Level = 6
)

// DefaultLevel is the minimum level used when none is requested.
const DefaultLevel = LevelMAJ

var levelNames = map[Level]string{
	LevelMAJ:   "MAJ",
	LevelAAA:   "AAA",
	LevelAA:    "AA",
	LevelHighA: "HIGH_A",
	LevelLowA:  "LOW_A",
	LevelROK:   "ROK",
}

var levelsByName = map[string]Level{
	"MAJ":    LevelMAJ,
	"AAA":    LevelAAA,
	"AA":     LevelAA,
	"HIGH_A": LevelHighA,
	"LOW_A":  LevelLowA,
	"ROK":    LevelROK,
}

// Levels returns every level from highest (MAJ) to lowest (ROK).
func Levels() []Level {
	return []Level{LevelMAJ, LevelAAA, LevelAA, LevelHighA, LevelLowA, LevelROK}
}

// String returns the enum name of the level, e.g. "HIGH_A".
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// Rank returns the numeric rank of the level. MAJ is 1.
func (l Level) Rank() int {
	return int(l)
}

// Above reports whether l is a strictly higher level than other.
func (l Level) Above(other Level) bool {
	return l < other
}

// levelName translates the site's hyphenated abbreviations into enum names.
func levelName(s string) string {
	switch s {
	case "H-A":
		return "HIGH_A"
	case "L-A":
		return "LOW_A"
	}
	return s
}

// ParseLevel parses a level name. Matching is case-sensitive; "H-A" and
// "L-A" are accepted as aliases for HIGH_A and LOW_A.
// Returns EINVALID for anything else.
func ParseLevel(s string) (Level, error) {
	name := levelName(s)
	if l, ok := levelsByName[name]; ok {
		return l, nil
	}
	return 0, Errorf(EINVALID, "Invalid value of '%s'. Values must be a valid member of the enum: Level", name)
}

// HighestLevel parses a comma-separated list of levels, such as "MAJ,AAA",
// and returns the highest one (the lowest rank).
func HighestLevel(s string) (Level, error) {
	var highest Level
	for _, tok := range strings.Split(s, ",") {
		l, err := ParseLevel(strings.TrimSpace(tok))
		if err != nil {
			return 0, err
		}
		if highest == 0 || l.Above(highest) {
			highest = l
		}
	}
	return highest, nil
}
