package bbref_test

import (
	"testing"
	"time"

	"github.com/fwojciec/bbref"
	"github.com/stretchr/testify/assert"
)

func TestMostRecentSeason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"offseason january", time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), 2025},
		{"spring training", time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC), 2025},
		{"season window opens", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), 2026},
		{"postseason", time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC), 2025},
		{"december", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, bbref.MostRecentSeason(tt.now))
		})
	}
}
