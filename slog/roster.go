package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bbref"
)

// Ensure LoggingRosterService implements bbref.RosterService.
var _ bbref.RosterService = (*LoggingRosterService)(nil)

// LoggingRosterService wraps a RosterService and logs every lookup.
type LoggingRosterService struct {
	next   bbref.RosterService
	logger *slog.Logger
}

// NewLoggingRosterService creates a new LoggingRosterService.
func NewLoggingRosterService(next bbref.RosterService, logger *slog.Logger) *LoggingRosterService {
	return &LoggingRosterService{next: next, logger: logger}
}

func (s *LoggingRosterService) ActiveRoster(ctx context.Context, team string) (table *bbref.Table, err error) {
	defer func(begin time.Time) {
		s.log("active roster", team, "", table, begin, err)
	}(time.Now())
	return s.next.ActiveRoster(ctx, team)
}

func (s *LoggingRosterService) DepthChartBatting(ctx context.Context, team, minLevel string) (table *bbref.Table, err error) {
	defer func(begin time.Time) {
		s.log("depth chart batting", team, minLevel, table, begin, err)
	}(time.Now())
	return s.next.DepthChartBatting(ctx, team, minLevel)
}

func (s *LoggingRosterService) DepthChartPitching(ctx context.Context, team, minLevel string) (table *bbref.Table, err error) {
	defer func(begin time.Time) {
		s.log("depth chart pitching", team, minLevel, table, begin, err)
	}(time.Now())
	return s.next.DepthChartPitching(ctx, team, minLevel)
}

func (s *LoggingRosterService) log(msg, team, minLevel string, table *bbref.Table, begin time.Time, err error) {
	rows := 0
	if table != nil {
		rows = table.Len()
	}
	attrs := []any{"team", team}
	if minLevel != "" {
		attrs = append(attrs, "min_level", minLevel)
	}
	attrs = append(attrs,
		"rows", rows,
		"duration", time.Since(begin),
		"err", err,
	)
	s.logger.Info(msg, attrs...)
}
