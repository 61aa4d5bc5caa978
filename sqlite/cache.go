package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/bbref"
	"github.com/google/uuid"
)

// DefaultTTL is how long cached tables stay fresh. Rosters change daily at
// most, so a day keeps repeated lookups off the network.
const DefaultTTL = 24 * time.Hour

// Compile-time interface verification.
var _ bbref.TableCache = (*TableCache)(nil)

// TableCache implements bbref.TableCache using SQLite. Tables are stored as
// JSON; entries older than the TTL are reported as misses.
type TableCache struct {
	db  *DB
	ttl time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// CacheOption configures a TableCache.
type CacheOption func(*TableCache)

// WithTTL sets how long entries stay fresh. Zero keeps entries forever.
func WithTTL(d time.Duration) CacheOption {
	return func(c *TableCache) {
		c.ttl = d
	}
}

// NewTableCache creates a new TableCache.
func NewTableCache(db *DB, opts ...CacheOption) *TableCache {
	c := &TableCache{
		db:  db,
		ttl: DefaultTTL,
		Now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetTable returns the cached table for key.
func (c *TableCache) GetTable(ctx context.Context, key string) (*bbref.Table, error) {
	var value, createdAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT value, created_at
		FROM table_cache
		WHERE key = ?
	`, key).Scan(&value, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, bbref.Errorf(bbref.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	created, err := parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	if c.ttl > 0 && c.Now().Sub(created) > c.ttl {
		return nil, bbref.Errorf(bbref.ENOTFOUND, "cache entry expired")
	}

	var table bbref.Table
	if err := json.Unmarshal([]byte(value), &table); err != nil {
		return nil, fmt.Errorf("failed to decode cached table: %w", err)
	}
	return &table, nil
}

// SetTable stores table under key, replacing any previous entry.
func (c *TableCache) SetTable(ctx context.Context, key string, table *bbref.Table) error {
	value, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO table_cache (id, key, value, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			id = excluded.id,
			value = excluded.value,
			created_at = excluded.created_at
	`, uuid.New().String(), key, string(value), formatTimestamp(c.Now()))

	return err
}

// Clear removes every cached table and returns how many were removed.
func (c *TableCache) Clear(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx, `DELETE FROM table_cache`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
