package mock

import (
	"context"

	"github.com/fwojciec/bbref"
)

var _ bbref.RosterService = (*RosterService)(nil)

// RosterService is a mock implementation of bbref.RosterService.
type RosterService struct {
	ActiveRosterFn       func(ctx context.Context, team string) (*bbref.Table, error)
	DepthChartBattingFn  func(ctx context.Context, team, minLevel string) (*bbref.Table, error)
	DepthChartPitchingFn func(ctx context.Context, team, minLevel string) (*bbref.Table, error)
}

func (s *RosterService) ActiveRoster(ctx context.Context, team string) (*bbref.Table, error) {
	return s.ActiveRosterFn(ctx, team)
}

func (s *RosterService) DepthChartBatting(ctx context.Context, team, minLevel string) (*bbref.Table, error) {
	return s.DepthChartBattingFn(ctx, team, minLevel)
}

func (s *RosterService) DepthChartPitching(ctx context.Context, team, minLevel string) (*bbref.Table, error) {
	return s.DepthChartPitchingFn(ctx, team, minLevel)
}
