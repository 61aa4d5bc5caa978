package bbref_test

import (
	"testing"

	"github.com/fwojciec/bbref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() *bbref.Table {
	t := bbref.NewTable([]string{"Name", "Pos Summary", "mlb_ID"})
	t.AppendRow([]string{"Kyle Finnegan", "RP", "640448"})
	t.AppendRow([]string{"Jose A. Ferrer", "RP", "677651"})
	t.AppendRow([]string{"Kyle Finnegan", "CL", "640448"})
	return t
}

func TestTable_AppendRow(t *testing.T) {
	t.Parallel()

	t.Run("pads short rows", func(t *testing.T) {
		t.Parallel()

		tbl := bbref.NewTable([]string{"a", "b", "c"})
		tbl.AppendRow([]string{"1"})

		require.Equal(t, 1, tbl.Len())
		assert.Equal(t, []string{"1", "", ""}, tbl.Rows[0])
	})

	t.Run("truncates long rows", func(t *testing.T) {
		t.Parallel()

		tbl := bbref.NewTable([]string{"a"})
		tbl.AppendRow([]string{"1", "2"})

		assert.Equal(t, []string{"1"}, tbl.Rows[0])
	})
}

func TestTable_RenameColumn(t *testing.T) {
	t.Parallel()

	tbl := newTestTable()

	assert.True(t, tbl.RenameColumn("Pos Summary", "Pos_Summary"))
	assert.Equal(t, 1, tbl.ColumnIndex("Pos_Summary"))
	assert.False(t, tbl.RenameColumn("Missing", "Other"))
}

func TestTable_DropDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("keeps first occurrence", func(t *testing.T) {
		t.Parallel()

		tbl := newTestTable()
		tbl.DropDuplicates("mlb_ID")

		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, "RP", tbl.Rows[0][1])
		assert.Equal(t, []string{"640448", "677651"}, tbl.Column("mlb_ID"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := newTestTable()
		once.DropDuplicates("mlb_ID")

		twice := newTestTable()
		twice.DropDuplicates("mlb_ID")
		twice.DropDuplicates("mlb_ID")

		assert.Equal(t, once.Rows, twice.Rows)
	})

	t.Run("ignores missing column", func(t *testing.T) {
		t.Parallel()

		tbl := newTestTable()
		tbl.DropDuplicates("player_ID")

		assert.Equal(t, 3, tbl.Len())
	})
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	tbl := newTestTable()

	row := tbl.Lookup("Name", "Jose A. Ferrer")
	require.NotNil(t, row)
	assert.Equal(t, "677651", row["mlb_ID"])

	assert.Nil(t, tbl.Lookup("Name", "Nobody"))
	assert.Nil(t, tbl.Lookup("Missing", "x"))
}

func TestTable_Records(t *testing.T) {
	t.Parallel()

	tbl := newTestTable()
	records := tbl.Records()

	require.Len(t, records, 4)
	assert.Equal(t, tbl.Columns, records[0])
	assert.Equal(t, "Kyle Finnegan", records[1][0])
}
