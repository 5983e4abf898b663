package tabular

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"
)

// DecodeCSV parses CSV bytes into a Table. Ragged records are tolerated and
// padded with missing cells. A zero-byte stream is a valid zero-column,
// zero-row table; structurally broken CSV (bad quoting and the like) is an
// ErrParse.
func DecodeCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, NewError(ErrParse, "invalid CSV: %v", err)
	}
	if len(records) == 0 {
		return FromRecords(nil, nil), nil
	}
	return FromRecords(records[0], records[1:]), nil
}

// DecodeXLSX parses the first sheet of an XLSX workbook into a Table, running
// the same kind inference over the sheet's string cells as the CSV path.
func DecodeXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewError(ErrParse, "invalid XLSX: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return FromRecords(nil, nil), nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, NewError(ErrParse, "failed to read sheet %q: %v", sheet, err)
	}
	if len(rows) == 0 {
		return FromRecords(nil, nil), nil
	}
	return FromRecords(rows[0], rows[1:]), nil
}
