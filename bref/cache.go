package bref

import (
	"context"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bbref"
)

var _ bbref.RosterService = (*CachedService)(nil)

// CachedService memoizes a RosterService. Results are keyed by operation
// name and arguments; on a hit the wrapped service is not called at all.
// Errors are never cached.
type CachedService struct {
	next  bbref.RosterService
	cache bbref.TableCache
}

// NewCachedService wraps next with cache.
func NewCachedService(next bbref.RosterService, cache bbref.TableCache) *CachedService {
	return &CachedService{next: next, cache: cache}
}

// CacheKey returns the cache key for an operation invoked with args.
func CacheKey(name string, args ...string) string {
	sig := name + "(" + strings.Join(args, ",") + ")"
	return strconv.FormatUint(xxhash.Sum64String(sig), 16)
}

// ActiveRoster returns the cached roster or fetches and caches it.
func (s *CachedService) ActiveRoster(ctx context.Context, team string) (*bbref.Table, error) {
	return s.memoize(ctx, CacheKey("active_roster", team), func() (*bbref.Table, error) {
		return s.next.ActiveRoster(ctx, team)
	})
}

// DepthChartBatting returns the cached depth chart or fetches and caches it.
func (s *CachedService) DepthChartBatting(ctx context.Context, team, minLevel string) (*bbref.Table, error) {
	return s.memoize(ctx, CacheKey("depth_chart_batting", team, levelArg(minLevel)), func() (*bbref.Table, error) {
		return s.next.DepthChartBatting(ctx, team, minLevel)
	})
}

// DepthChartPitching returns the cached depth chart or fetches and caches it.
func (s *CachedService) DepthChartPitching(ctx context.Context, team, minLevel string) (*bbref.Table, error) {
	return s.memoize(ctx, CacheKey("depth_chart_pitching", team, levelArg(minLevel)), func() (*bbref.Table, error) {
		return s.next.DepthChartPitching(ctx, team, minLevel)
	})
}

func (s *CachedService) memoize(ctx context.Context, key string, fn func() (*bbref.Table, error)) (*bbref.Table, error) {
	table, err := s.cache.GetTable(ctx, key)
	if err == nil {
		return table, nil
	}
	if bbref.ErrorCode(err) != bbref.ENOTFOUND {
		return nil, err
	}

	table, err = fn()
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetTable(ctx, key, table); err != nil {
		return nil, err
	}
	return table, nil
}

// levelArg makes the default level and an explicit MAJ share a cache entry.
func levelArg(minLevel string) string {
	if minLevel == "" {
		return bbref.DefaultLevel.String()
	}
	return minLevel
}
