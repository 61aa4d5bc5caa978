// Package bref implements bbref.RosterService against baseball-reference.com.
// It builds page URLs, validates input before any network call, and hands
// fetched markup to a bbref.RosterParser.
package bref

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/bbref"
)

// DefaultBaseURL is the root of baseball-reference.com.
const DefaultBaseURL = "https://" + bbref.BRefHost

// Input validation messages.
const (
	invalidRosterTeamMessage = "Team must be the three-letter abbreviation of an active MLB team."
	invalidDepthTeamMessage  = "Supplied team must be an active MLB team."
)

var _ bbref.RosterService = (*Service)(nil)

// Service fetches and parses roster pages.
type Service struct {
	Fetcher bbref.Fetcher
	Parser  bbref.RosterParser

	// BaseURL replaces DefaultBaseURL, e.g. to point at a test server.
	BaseURL string

	// Now returns the current time; used to pick the most recent season.
	Now func() time.Time
}

// NewService creates a Service using the production site.
func NewService(fetcher bbref.Fetcher, parser bbref.RosterParser) *Service {
	return &Service{
		Fetcher: fetcher,
		Parser:  parser,
		BaseURL: DefaultBaseURL,
		Now:     time.Now,
	}
}

// ActiveRosterURL returns the team season page holding the 40-man roster.
func ActiveRosterURL(baseURL, team string, season int) string {
	return fmt.Sprintf("%s/teams/%s/%d.shtml", baseURL, team, season)
}

// DepthChartURL returns the organization depth chart page for a team.
func DepthChartURL(baseURL string, team bbref.Team, playerType bbref.PlayerType) string {
	return fmt.Sprintf("%s/teams/%s/%s-organization-%s.shtml", baseURL, team.Code, team.Slug, playerType)
}

// ActiveRoster returns the team's 40-man roster for the most recent season.
func (s *Service) ActiveRoster(ctx context.Context, team string) (*bbref.Table, error) {
	if _, ok := bbref.FindTeam(team); !ok {
		return nil, bbref.Errorf(bbref.EINVALID, invalidRosterTeamMessage)
	}

	season := bbref.MostRecentSeason(s.now())
	html, err := s.Fetcher.Fetch(ctx, ActiveRosterURL(s.BaseURL, team, season))
	if err != nil {
		return nil, err
	}

	return s.Parser.ParseActiveRoster(html)
}

// DepthChartBatting returns the position players in the team's system at
// minLevel or above.
func (s *Service) DepthChartBatting(ctx context.Context, team, minLevel string) (*bbref.Table, error) {
	return s.depthChart(ctx, team, minLevel, bbref.PlayerTypeBatting)
}

// DepthChartPitching returns the pitchers in the team's system at minLevel
// or above.
func (s *Service) DepthChartPitching(ctx context.Context, team, minLevel string) (*bbref.Table, error) {
	return s.depthChart(ctx, team, minLevel, bbref.PlayerTypePitching)
}

func (s *Service) depthChart(ctx context.Context, code, minLevel string, playerType bbref.PlayerType) (*bbref.Table, error) {
	team, ok := bbref.FindTeam(code)
	if !ok {
		return nil, bbref.Errorf(bbref.EINVALID, invalidDepthTeamMessage)
	}

	level := bbref.DefaultLevel
	if minLevel != "" {
		var err error
		if level, err = bbref.ParseLevel(minLevel); err != nil {
			return nil, err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, DepthChartURL(s.BaseURL, team, playerType))
	if err != nil {
		return nil, err
	}

	return s.Parser.ParseDepthChart(html, playerType, level)
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
