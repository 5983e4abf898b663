package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func threeRowTable(t *testing.T) *Table {
	t.Helper()
	table, err := DecodeCSV(strings.NewReader("name,age\nAlice,30\nBob,25\nCara,41\n"))
	require.NoError(t, err)
	return table
}

func TestView_Page(t *testing.T) {
	t.Parallel()

	table := threeRowTable(t)

	tests := map[string]struct {
		skip     int
		limit    int
		wantLen  int
		wantName string // first row's name, "" when empty
	}{
		"full page":            {skip: 0, limit: 100, wantLen: 3, wantName: "Alice"},
		"window in the middle": {skip: 1, limit: 1, wantLen: 1, wantName: "Bob"},
		"limit clamps at end":  {skip: 2, limit: 10, wantLen: 1, wantName: "Cara"},
		"skip past end":        {skip: 5, limit: 10, wantLen: 0},
		"zero limit":           {skip: 0, limit: 0, wantLen: 0},
		"negative skip":        {skip: -3, limit: 2, wantLen: 2, wantName: "Alice"},
		"negative limit":       {skip: 0, limit: -1, wantLen: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			view := FullView(table)

			page := view.Page(tc.skip, tc.limit)
			req.Len(page, tc.wantLen)

			// total is always the pre-pagination count
			req.Equal(3, view.Total())

			if tc.wantName != "" {
				req.Equal(tc.wantName, page[0]["name"])
			}
		})
	}
}

func TestView_PageInvariant(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	table := threeRowTable(t)
	view := FullView(table)

	// len(page) == min(limit, max(0, total-skip)) for every window
	for skip := 0; skip <= 5; skip++ {
		for limit := 0; limit <= 5; limit++ {
			want := view.Total() - skip
			if want < 0 {
				want = 0
			}
			if limit < want {
				want = limit
			}
			req.Len(view.Page(skip, limit), want, "skip=%d limit=%d", skip, limit)
		}
	}
}

func TestView_EmptySelection(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	view := NewView(threeRowTable(t), nil)
	req.Equal(0, view.Total())
	req.Empty(view.Page(0, 100))
}
