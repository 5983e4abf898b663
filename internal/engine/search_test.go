package engine

import (
	"encoding/json"
	"testing"

	"github.com/csvdeck/csvdeck-api/internal/tabular"
	"github.com/stretchr/testify/require"
)

func TestEngine_Search_NoData(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	e := newTestEngine(t)
	rs, err := e.Search("bob", 0, 100)
	req.Error(err)
	req.ErrorIs(err, tabular.ErrNoData)
	req.Nil(rs)
}

func TestEngine_Search(t *testing.T) {
	t.Parallel()

	const csvData = "name,city,age\nAlice,Lisbon,30\nBob,Boston,25\nCara,Berlin,41\n"

	tests := map[string]struct {
		term      string
		wantTotal int
		wantNames []string
	}{
		"case-insensitive match": {
			term:      "bob",
			wantTotal: 1,
			wantNames: []string{"Bob"},
		},
		"substring match": {
			term:      "li",
			wantTotal: 2,
			wantNames: []string{"Alice", "Cara"}, // Alice + Lisbon, Berlin
		},
		"OR across text columns": {
			term:      "bo",
			wantTotal: 2,
			wantNames: []string{"Alice", "Bob"}, // Lisbon, Bob + Boston
		},
		"a row matches once even when several columns hit": {
			term:      "b",
			wantTotal: 3,
			wantNames: []string{"Alice", "Bob", "Cara"},
		},
		"integer columns are never searched": {
			term:      "30",
			wantTotal: 0,
		},
		"no match is an empty success": {
			term:      "zzz",
			wantTotal: 0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			req := require.New(t)

			e := newTestEngine(t)
			loadCSV(t, e, "people.csv", csvData)

			rs, err := e.Search(tc.term, 0, 100)
			req.NoError(err)
			req.Equal(tc.wantTotal, rs.Total)
			req.Len(rs.Data, len(tc.wantNames))
			for i, want := range tc.wantNames {
				req.Equal(want, rs.Data[i]["name"])
			}
		})
	}
}

func TestEngine_Search_NoTextColumns(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	e := newTestEngine(t)
	loadCSV(t, e, "numbers.csv", "a,b\n1,2.5\n3,4.5\n")

	rs, err := e.Search("1", 0, 100)
	req.NoError(err)
	req.Equal(0, rs.Total)
	req.Empty(rs.Data)
}

func TestEngine_Search_Pagination(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	e := newTestEngine(t)
	loadCSV(t, e, "people.csv", "name\nAnna\nAnja\nAnka\n")

	rs, err := e.Search("an", 1, 1)
	req.NoError(err)
	req.Equal(3, rs.Total)
	req.Len(rs.Data, 1)
	req.Equal("Anja", rs.Data[0]["name"])
}

func TestEngine_Search_Scenario(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	e := newTestEngine(t)
	loadCSV(t, e, "people.csv", peopleCSV)

	rs, err := e.Search("bob", 0, 100)
	req.NoError(err)

	body, err := json.Marshal(rs)
	req.NoError(err)
	req.JSONEq(`{"total":1,"skip":0,"limit":100,"data":[{"name":"Bob","age":25}]}`, string(body))
}
