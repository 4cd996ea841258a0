package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{name: "json number", in: float64(45), want: 45},
		{name: "json number truncates", in: float64(12.9), want: 12},
		{name: "numeric string", in: "45", want: 45},
		{name: "padded numeric string", in: " 45 ", want: 45},
		{name: "decimal string is not an int", in: "12.5", want: 0},
		{name: "non-numeric string", in: "abc", want: 0},
		{name: "absent", in: nil, want: 0},
		{name: "unexpected shape", in: []any{1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{name: "json number", in: float64(87.5), want: 87.5},
		{name: "numeric string", in: "87.50", want: 87.5},
		{name: "integer string", in: "4", want: 4},
		{name: "non-numeric string", in: "abc", want: 0},
		{name: "absent", in: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat(tt.in))
		})
	}
}
