// Package tabular holds the in-memory typed table shared between the upload
// path and the query engine: column kind inference, CSV/XLSX decoding, filter
// value coercion and index-based views over the rows.
package tabular

import (
	"fmt"
	"strings"
)

// Column is a named column with its inferred kind.
type Column struct {
	Name string
	Kind Kind
}

// Table is an immutable in-memory dataset. Column order is stable and shared
// by every row; each row holds a Value (possibly missing) for every column.
// Tables are never mutated after construction, only replaced wholesale.
type Table struct {
	columns []Column
	byName  map[string]int
	rows    [][]Value
}

// FromRecords builds a Table from a header row and raw string records, running
// kind inference per column. Blank header cells get positional names and
// duplicate names get a positional suffix so lookups stay unambiguous. Short
// records pad with missing cells; extra cells beyond the header are dropped.
func FromRecords(header []string, records [][]string) *Table {
	names := normalizeHeader(header)

	cols := make([]Column, len(names))
	byName := make(map[string]int, len(names))
	for i, name := range names {
		cells := make([]string, 0, len(records))
		for _, rec := range records {
			if i < len(rec) {
				cells = append(cells, rec[i])
			}
		}
		cols[i] = Column{Name: name, Kind: inferKind(cells)}
		byName[name] = i
	}

	rows := make([][]Value, len(records))
	for r, rec := range records {
		row := make([]Value, len(cols))
		for c, col := range cols {
			raw := ""
			if c < len(rec) {
				raw = rec[c]
			}
			row[c] = parseCell(col.Kind, raw)
		}
		rows[r] = row
	}

	return &Table{columns: cols, byName: byName, rows: rows}
}

func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Column_%d", i+1)
		}
		if seen[name] {
			name = fmt.Sprintf("%s_%d", name, i+1)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

// Columns returns the ordered column metadata.
func (t *Table) Columns() []Column {
	return t.columns
}

// ColumnKind looks up a column's kind by name.
func (t *Table) ColumnKind(name string) (Kind, bool) {
	i, ok := t.byName[name]
	if !ok {
		return 0, false
	}
	return t.columns[i].Kind, true
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Value returns the cell at the given row and column positions.
func (t *Table) Value(row, col int) Value {
	return t.rows[row][col]
}

// RowJSON materializes one row as a JSON-representable mapping from column
// name to sanitized value. Called only for rows on the page actually being
// returned.
func (t *Table) RowJSON(row int) map[string]any {
	out := make(map[string]any, len(t.columns))
	for c, col := range t.columns {
		out[col.Name] = t.rows[row][c].JSON()
	}
	return out
}
