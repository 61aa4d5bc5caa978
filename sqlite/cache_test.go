package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/bbref"
	"github.com/fwojciec/bbref/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterTable() *bbref.Table {
	t := bbref.NewTable([]string{"Name", "player_ID", "mlb_ID"})
	t.AppendRow([]string{"CJ Abrams", "abramcj01", ""})
	t.AppendRow([]string{"Andry Lara", "", "682629"})
	return t
}

func TestTableCache_GetTable(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for missing key", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewTableCache(openTestDB(t))

		_, err := cache.GetTable(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, bbref.ENOTFOUND, bbref.ErrorCode(err))
	})

	t.Run("round trips stored table", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cache := sqlite.NewTableCache(openTestDB(t))

		require.NoError(t, cache.SetTable(ctx, "roster", rosterTable()))

		got, err := cache.GetTable(ctx, "roster")
		require.NoError(t, err)
		assert.Equal(t, rosterTable(), got)
	})

	t.Run("treats expired entry as miss", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		now := time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC)
		cache := sqlite.NewTableCache(openTestDB(t), sqlite.WithTTL(time.Hour))
		cache.Now = func() time.Time { return now }

		require.NoError(t, cache.SetTable(ctx, "roster", rosterTable()))

		now = now.Add(59 * time.Minute)
		_, err := cache.GetTable(ctx, "roster")
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = cache.GetTable(ctx, "roster")
		require.Error(t, err)
		assert.Equal(t, bbref.ENOTFOUND, bbref.ErrorCode(err))
	})

	t.Run("zero TTL never expires", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		now := time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC)
		cache := sqlite.NewTableCache(openTestDB(t), sqlite.WithTTL(0))
		cache.Now = func() time.Time { return now }

		require.NoError(t, cache.SetTable(ctx, "roster", rosterTable()))

		now = now.AddDate(5, 0, 0)
		_, err := cache.GetTable(ctx, "roster")
		require.NoError(t, err)
	})
}

func TestTableCache_SetTable(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing entry", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cache := sqlite.NewTableCache(openTestDB(t))

		require.NoError(t, cache.SetTable(ctx, "roster", rosterTable()))

		updated := bbref.NewTable([]string{"Name"})
		updated.AppendRow([]string{"James Wood"})
		require.NoError(t, cache.SetTable(ctx, "roster", updated))

		got, err := cache.GetTable(ctx, "roster")
		require.NoError(t, err)
		assert.Equal(t, []string{"James Wood"}, got.Column("Name"))
	})

	t.Run("refreshes entry timestamp", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		now := time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC)
		cache := sqlite.NewTableCache(openTestDB(t), sqlite.WithTTL(time.Hour))
		cache.Now = func() time.Time { return now }

		require.NoError(t, cache.SetTable(ctx, "roster", rosterTable()))
		now = now.Add(50 * time.Minute)
		require.NoError(t, cache.SetTable(ctx, "roster", rosterTable()))
		now = now.Add(50 * time.Minute)

		_, err := cache.GetTable(ctx, "roster")
		require.NoError(t, err)
	})
}

func TestTableCache_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := sqlite.NewTableCache(openTestDB(t))

	require.NoError(t, cache.SetTable(ctx, "a", rosterTable()))
	require.NoError(t, cache.SetTable(ctx, "b", rosterTable()))

	n, err := cache.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = cache.GetTable(ctx, "a")
	assert.Equal(t, bbref.ENOTFOUND, bbref.ErrorCode(err))
}
