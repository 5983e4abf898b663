package tabular

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cells []string
		want  Kind
	}{
		{
			name:  "all whole numbers",
			cells: []string{"1", "2", "-3"},
			want:  Integer,
		},
		{
			name:  "all decimals",
			cells: []string{"1.5", "2.0", "-0.25"},
			want:  Float,
		},
		{
			name:  "whole numbers mixed with decimals widen to float",
			cells: []string{"1", "2.5"},
			want:  Float,
		},
		{
			name:  "scientific notation is float",
			cells: []string{"1e3", "2"},
			want:  Float,
		},
		{
			name:  "any non-numeric cell makes the column text",
			cells: []string{"1", "2", "three"},
			want:  Text,
		},
		{
			name:  "plain strings",
			cells: []string{"Alice", "Bob"},
			want:  Text,
		},
		{
			name:  "empty cells carry no vote",
			cells: []string{"", "42", ""},
			want:  Integer,
		},
		{
			name:  "whitespace-only cells carry no vote",
			cells: []string{"  ", "1.5"},
			want:  Float,
		},
		{
			name:  "all-empty column is text",
			cells: []string{"", ""},
			want:  Text,
		},
		{
			name:  "no cells is text",
			cells: nil,
			want:  Text,
		},
		{
			name:  "int64 overflow widens to float",
			cells: []string{"9223372036854775808"},
			want:  Float,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inferKind(tt.cells))
		})
	}
}

func TestParseCell(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	req.Equal(IntValue(42), parseCell(Integer, "42"))
	req.Equal(FloatValue(2.5), parseCell(Float, "2.5"))
	req.Equal(TextValue("Alice"), parseCell(Text, "Alice"))
	req.Equal(MissingValue(Integer), parseCell(Integer, ""))
	req.Equal(MissingValue(Float), parseCell(Float, "   "))
}
