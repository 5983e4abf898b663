package tabular

// View is an ordered subset of a table's rows selected by a query. It carries
// row indices only; row data is never copied until a page is materialized.
type View struct {
	table   *Table
	indices []int
}

// NewView builds a view over the given row indices. Indices must preserve the
// table's original row order.
func NewView(t *Table, indices []int) *View {
	return &View{table: t, indices: indices}
}

// FullView selects every row of the table.
func FullView(t *Table) *View {
	indices := make([]int, t.NumRows())
	for i := range indices {
		indices[i] = i
	}
	return &View{table: t, indices: indices}
}

// Total is the filtered row count before pagination.
func (v *View) Total() int {
	return len(v.indices)
}

// Page returns the sanitized JSON rows for the window [skip, skip+limit).
// Skip beyond the view's length yields an empty page, and negative skip or
// limit are treated as zero. Only the paged rows are materialized.
func (v *View) Page(skip, limit int) []map[string]any {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip > len(v.indices) {
		skip = len(v.indices)
	}
	end := skip + limit
	if end > len(v.indices) {
		end = len(v.indices)
	}

	page := make([]map[string]any, 0, end-skip)
	for _, row := range v.indices[skip:end] {
		page = append(page, v.table.RowJSON(row))
	}
	return page
}
