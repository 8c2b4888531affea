package utils

import (
	"math"
	"strconv"
	"strings"
)

// Str renders a decoded value the way it is written inside a card line:
// floats keep a decimal point ("1.0"), and large or tiny magnitudes switch to
// exponent form ("1e-05").
func Str(v any) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return t
	case bool:
		if t {
			return "True"
		}

		return "False"
	case float64:
		return FormatFloat(t)
	case float32:
		return FormatFloat(float64(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = Str(item)
		}

		return strings.Join(parts, " ")
	}

	if n, ok := Int(v); ok {
		return strconv.Itoa(n)
	}

	return "?"
}

// FormatFloat prints the shortest representation that round-trips, always
// with a decimal point or an exponent.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Quote renders s as a quoted literal: single quotes, or double quotes when
// s holds a single quote and no double quote.
func Quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
	}

	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)

	return "'" + s + "'"
}

// FortranBool returns .true. or .false.
func FortranBool(b bool) string {
	if b {
		return ".true."
	}

	return ".false."
}

// Fortran renders a scalar as a namelist value: logicals as .true./.false.,
// strings trimmed and quoted, numbers as plain text. Lists of scalars become
// a comma separated value list. Maps are not scalars and report false.
func Fortran(v any) (string, bool) {
	switch t := v.(type) {
	case bool:
		return FortranBool(t), true
	case string:
		return Quote(strings.TrimSpace(t)), true
	case map[string]any, nil:
		return "", false
	case []any:
		parts := make([]string, 0, len(t))

		for _, item := range t {
			s, ok := Fortran(item)
			if !ok {
				return "", false
			}

			parts = append(parts, s)
		}

		return strings.Join(parts, ", "), len(parts) > 0
	}

	return Str(v), true
}
