package engine

import (
	"github.com/csvdeck/csvdeck-api/internal/tabular"
	"github.com/rs/zerolog/log"
)

// Records returns one page of rows matching the given equality filters.
// Filter keys that are not column names are ignored rather than rejected;
// multiple filters are ANDed. With no filters every row matches.
func (e *Engine) Records(filters map[string]string, skip, limit int) (*ResultSet, error) {
	t, err := e.current()
	if err != nil {
		return nil, err
	}

	view := filterRows(t, filters)
	skip, limit = e.clampPage(skip, limit)

	log.Debug().
		Int("filters", len(filters)).
		Int("matched", view.Total()).
		Msg("records query")

	return &ResultSet{
		Total: view.Total(),
		Skip:  skip,
		Limit: limit,
		Data:  view.Page(skip, limit),
	}, nil
}

type columnFilter struct {
	col  int
	want tabular.Value
}

// filterRows selects the rows where every filter's coerced value strictly
// equals the row's cell in that column, preserving original row order.
func filterRows(t *tabular.Table, filters map[string]string) *tabular.View {
	active := make([]columnFilter, 0, len(filters))
	for i, col := range t.Columns() {
		raw, ok := filters[col.Name]
		if !ok {
			continue
		}
		active = append(active, columnFilter{col: i, want: tabular.Coerce(col.Kind, raw)})
	}
	if len(active) == 0 {
		return tabular.FullView(t)
	}

	var indices []int
	for row := 0; row < t.NumRows(); row++ {
		matched := true
		for _, f := range active {
			if !t.Value(row, f.col).Equal(f.want) {
				matched = false
				break
			}
		}
		if matched {
			indices = append(indices, row)
		}
	}
	return tabular.NewView(t, indices)
}
