package bbref

// Column names added to the tables scraped from the site.
const (
	ColumnBRefID = "player_ID"
	ColumnMLBID  = "mlb_ID"
	ColumnStatus = "status"
)

// Table is an ordered set of named columns and string rows. Every row has
// exactly len(Columns) cells.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewTable returns an empty table with the given columns.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns, Rows: [][]string{}}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// AppendRow adds a row, padding or truncating it to the table width.
func (t *Table) AppendRow(row []string) {
	switch {
	case len(row) < len(t.Columns):
		padded := make([]string, len(t.Columns))
		copy(padded, row)
		row = padded
	case len(row) > len(t.Columns):
		row = row[:len(t.Columns)]
	}
	t.Rows = append(t.Rows, row)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// RenameColumn renames a column if it exists and reports whether it did.
func (t *Table) RenameColumn(from, to string) bool {
	i := t.ColumnIndex(from)
	if i < 0 {
		return false
	}
	t.Columns[i] = to
	return true
}

// Column returns the values of the named column, or nil if it is absent.
func (t *Table) Column(name string) []string {
	i := t.ColumnIndex(name)
	if i < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for j, row := range t.Rows {
		values[j] = row[i]
	}
	return values
}

// Lookup returns the first row whose column equals value as a map from
// column name to cell. Returns nil when no row matches.
func (t *Table) Lookup(column, value string) map[string]string {
	i := t.ColumnIndex(column)
	if i < 0 {
		return nil
	}
	for _, row := range t.Rows {
		if row[i] == value {
			m := make(map[string]string, len(t.Columns))
			for k, c := range t.Columns {
				m[c] = row[k]
			}
			return m
		}
	}
	return nil
}

// DropDuplicates removes rows whose value in column was already seen,
// keeping the first occurrence. It is a no-op if the column is absent.
func (t *Table) DropDuplicates(column string) {
	i := t.ColumnIndex(column)
	if i < 0 {
		return
	}
	seen := make(map[string]bool, len(t.Rows))
	unique := t.Rows[:0]
	for _, row := range t.Rows {
		if seen[row[i]] {
			continue
		}
		seen[row[i]] = true
		unique = append(unique, row)
	}
	t.Rows = unique
}

// Records returns the header followed by every row, the shape expected by
// encoding/csv and similar writers.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Columns)
	return append(records, t.Rows...)
}
