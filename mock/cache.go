package mock

import (
	"context"

	"github.com/fwojciec/bbref"
)

var _ bbref.TableCache = (*TableCache)(nil)

// TableCache is a mock implementation of bbref.TableCache.
type TableCache struct {
	GetTableFn func(ctx context.Context, key string) (*bbref.Table, error)
	SetTableFn func(ctx context.Context, key string, table *bbref.Table) error
}

func (c *TableCache) GetTable(ctx context.Context, key string) (*bbref.Table, error) {
	return c.GetTableFn(ctx, key)
}

func (c *TableCache) SetTable(ctx context.Context, key string, table *bbref.Table) error {
	return c.SetTableFn(ctx, key, table)
}
