package tabular

import (
	"strconv"
	"strings"
)

// inferKind buckets a column into integer, float or text from its raw cells.
// Empty cells are missing data and carry no vote; a column with no non-empty
// cells is text. Integers that overflow int64 widen to float, and anything
// that fails a float parse makes the whole column text.
func inferKind(cells []string) Kind {
	sawValue := false
	allInt := true
	allFloat := true

	for _, cell := range cells {
		raw := strings.TrimSpace(cell)
		if raw == "" {
			continue
		}
		sawValue = true

		if allInt {
			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				allInt = false
			}
		}
		if !allInt && allFloat {
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				allFloat = false
			}
		}
		if !allInt && !allFloat {
			return Text
		}
	}

	if !sawValue {
		return Text
	}
	if allInt {
		return Integer
	}
	if allFloat {
		return Float
	}
	return Text
}

// parseCell converts one raw cell into a Value of the column's inferred kind.
// The inference pass guarantees every non-empty cell parses for its kind, but
// a failed parse still degrades to missing rather than panicking.
func parseCell(kind Kind, raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return MissingValue(kind)
	}
	switch kind {
	case Integer:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return MissingValue(kind)
		}
		return IntValue(n)
	case Float:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return MissingValue(kind)
		}
		return FloatValue(f)
	}
	return TextValue(raw)
}
