package tabular

import (
	"math"
	"strconv"
)

// Kind is the inferred semantic type of a column. Every column is bucketed
// into exactly one of the three kinds at construction time.
type Kind int

const (
	Integer Kind = iota
	Float
	Text
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Text:
		return "text"
	}
	return "unknown"
}

// Value is a single table cell: a tagged union of integer, float, text or
// missing. The zero Value is a missing integer cell.
type Value struct {
	kind    Kind
	missing bool
	i       int64
	f       float64
	s       string
}

func IntValue(v int64) Value {
	return Value{kind: Integer, i: v}
}

func FloatValue(v float64) Value {
	return Value{kind: Float, f: v}
}

func TextValue(s string) Value {
	return Value{kind: Text, s: s}
}

// MissingValue returns the missing cell for a column of the given kind.
func MissingValue(kind Kind) Value {
	return Value{kind: kind, missing: true}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsMissing() bool {
	return v.missing
}

// Text returns the textual payload of a text cell, or "" for anything else.
func (v Value) Text() (string, bool) {
	if v.missing || v.kind != Text {
		return "", false
	}
	return v.s, true
}

// Equal reports strict equality between two cells. Missing never equals
// anything, including another missing cell, which keeps equality filters from
// matching holes in the data.
func (v Value) Equal(o Value) bool {
	if v.missing || o.missing || v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Integer:
		return v.i == o.i
	case Float:
		return v.f == o.f
	case Text:
		return v.s == o.s
	}
	return false
}

// JSON returns the cell as a JSON-representable value. Missing cells, NaN and
// the infinities all map to nil so the encoder never sees a non-finite float.
func (v Value) JSON() any {
	if v.missing {
		return nil
	}
	switch v.kind {
	case Integer:
		return v.i
	case Float:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil
		}
		return v.f
	case Text:
		return v.s
	}
	return nil
}

// Coerce converts a raw textual filter value into a Value comparable against
// a column of the given kind. A value that does not parse into the column's
// kind degrades to a text cell, which simply fails to equal any typed cell
// rather than erroring the request.
func Coerce(kind Kind, raw string) Value {
	switch kind {
	case Integer:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IntValue(n)
		}
	case Float:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FloatValue(f)
		}
	}
	return TextValue(raw)
}
