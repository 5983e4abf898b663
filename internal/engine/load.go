package engine

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/csvdeck/csvdeck-api/internal/tabular"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LoadResult describes an accepted upload.
type LoadResult struct {
	DatasetID string
	Filename  string
	Rows      int
}

// Load decodes an uploaded file and installs it as the current dataset,
// discarding any previous one. The swap is a single reference assignment
// under the write lock, so readers observe either the old or the new table in
// full. A decode failure leaves the store untouched.
func (e *Engine) Load(filename string, r io.Reader) (*LoadResult, error) {
	var (
		table *tabular.Table
		err   error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		table, err = tabular.DecodeCSV(r)
	case ".xlsx":
		table, err = tabular.DecodeXLSX(r)
	default:
		return nil, tabular.NewError(tabular.ErrFormat, "%q: only .csv and .xlsx files are supported", filename)
	}
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()

	e.rwMutex.Lock()
	e.table = table
	e.datasetID = id
	e.rwMutex.Unlock()

	log.Info().
		Str("dataset", id).
		Str("file", filename).
		Int("rows", table.NumRows()).
		Int("columns", len(table.Columns())).
		Msg("dataset replaced")

	return &LoadResult{
		DatasetID: id,
		Filename:  filename,
		Rows:      table.NumRows(),
	}, nil
}
