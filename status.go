package bbref

import "strings"

// Status is a player's roster status as annotated on depth chart pages.
type Status string

// Status constants. StatusNone means no annotation was found.
const (
	StatusActive   Status = "26-man"
	StatusFortyMan Status = "40-man"
	StatusIL60     Status = "IL-60"
	StatusIL15     Status = "IL-15"
	StatusIL10     Status = "IL-10"
	StatusIL7      Status = "IL-7"
	StatusNone     Status = ""
)

// statusAnnotations maps annotation substrings to statuses in match order.
var statusAnnotations = []struct {
	text   string
	status Status
}{
	{"(40-man)", StatusFortyMan},
	{"(60-day IL)", StatusIL60},
	{"(15-day IL)", StatusIL15},
	{"(10-day IL)", StatusIL10},
	{"(7-day IL)", StatusIL7},
}

// StatusFromAnnotation classifies the small-print note that follows a
// player's name, e.g. "(15-day IL)". Unrecognized notes yield StatusNone.
func StatusFromAnnotation(text string) Status {
	for _, a := range statusAnnotations {
		if strings.Contains(text, a.text) {
			return a.status
		}
	}
	return StatusNone
}
