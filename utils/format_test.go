package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		expected string
	}{
		{1, "1.0"},
		{0, "0.0"},
		{-2.5, "-2.5"},
		{26.981538, "26.981538"},
		{1e-5, "1e-05"},
		{0.0001, "0.0001"},
		{1e16, "1e+16"},
		{123456789.0, "123456789.0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatFloat(tt.in))
		})
	}
}

func TestStr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0", Str(1.0))
	assert.Equal(t, "7", Str(7))
	assert.Equal(t, "7", Str(int64(7)))
	assert.Equal(t, "O.UPF", Str("O.UPF"))
	assert.Equal(t, "True", Str(true))
	assert.Equal(t, "0.5 1", Str([]any{0.5, 1}))
}

func TestFortran(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       any
		expected string
		ok       bool
	}{
		{"true", true, ".true.", true},
		{"false", false, ".false.", true},
		{"string is trimmed and quoted", "  a string ", "'a string'", true},
		{"single quote switches delimiter", "it's", `"it's"`, true},
		{"both quotes are escaped", `it's "x"`, `'it\'s "x"'`, true},
		{"int", 12, "12", true},
		{"float", 0.5, "0.5", true},
		{"list", []any{0.0, 0.0, 0.1}, "0.0, 0.0, 0.1", true},
		{"map", map[string]any{}, "", false},
		{"nil", nil, "", false},
		{"empty list", []any{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Fortran(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
