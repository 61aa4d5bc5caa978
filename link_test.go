package bbref_test

import (
	"testing"

	"github.com/fwojciec/bbref"
	"github.com/stretchr/testify/assert"
)

func TestPlayerIDsFromLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		want bbref.PlayerIDs
	}{
		{
			name: "relative player page",
			href: "/players/s/sotoju01.shtml",
			want: bbref.PlayerIDs{BRefID: "sotoju01"},
		},
		{
			name: "absolute player page",
			href: "https://www.baseball-reference.com/players/g/gorema01.shtml",
			want: bbref.PlayerIDs{BRefID: "gorema01"},
		},
		{
			name: "mlb profile",
			href: "https://www.mlb.com/player/andry-lara-682629",
			want: bbref.PlayerIDs{MLBID: "682629"},
		},
		{
			name: "redirect with mlb_ID parameter",
			href: "/redirect.fcgi?player=1&mlb_ID=701358",
			want: bbref.PlayerIDs{MLBID: "701358"},
		},
		{
			name: "players path on another host",
			href: "https://example.com/players/x/xyz01.shtml",
			want: bbref.PlayerIDs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, bbref.PlayerIDsFromLink(tt.href))
		})
	}
}

func TestMLBIDFromLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href string
		want string
	}{
		{"https://www.mlb.com/player/682629", "682629"},
		{"https://www.mlb.com/player/682629/", "682629"},
		{"https://www.mlb.com/player/andry-lara-682629", "682629"},
		{"/redirect.fcgi?player=1&mlb_ID=660271", "660271"},
		{"https://www.mlb.com/player/?id=605280", "605280"},
		{"/register/player.fcgi?id=lara--001and", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, bbref.MLBIDFromLink(tt.href))
		})
	}
}
