package engine

import (
	"strings"

	"github.com/csvdeck/csvdeck-api/internal/tabular"
	"github.com/rs/zerolog/log"
)

// Search returns one page of rows where at least one text column contains the
// term as a case-insensitive substring. Non-text columns are never searched;
// a table with no text columns yields an empty result, not an error.
func (e *Engine) Search(term string, skip, limit int) (*ResultSet, error) {
	t, err := e.current()
	if err != nil {
		return nil, err
	}

	view := searchRows(t, term)
	skip, limit = e.clampPage(skip, limit)

	log.Debug().
		Str("term", term).
		Int("matched", view.Total()).
		Msg("search query")

	return &ResultSet{
		Total: view.Total(),
		Skip:  skip,
		Limit: limit,
		Data:  view.Page(skip, limit),
	}, nil
}

func searchRows(t *tabular.Table, term string) *tabular.View {
	var textCols []int
	for i, col := range t.Columns() {
		if col.Kind == tabular.Text {
			textCols = append(textCols, i)
		}
	}
	if len(textCols) == 0 {
		return tabular.NewView(t, nil)
	}

	needle := strings.ToLower(term)

	var indices []int
	for row := 0; row < t.NumRows(); row++ {
		for _, col := range textCols {
			s, ok := t.Value(row, col).Text()
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(s), needle) {
				indices = append(indices, row)
				break
			}
		}
	}
	return tabular.NewView(t, indices)
}
