package bbref

import (
	"regexp"
	"strings"
)

var parenSuffix = regexp.MustCompile(` \(.*\)`)

// SanitizePlayerName removes parenthesized notes and the '*' and '#'
// handedness markers, then renders "Last, First" as "First Last".
// Names without a comma are returned with only the decorations removed.
func SanitizePlayerName(name string) string {
	name = parenSuffix.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "*", "")
	name = strings.ReplaceAll(name, "#", "")

	last, first, ok := strings.Cut(name, ", ")
	if !ok {
		return name
	}
	return first + " " + last
}
