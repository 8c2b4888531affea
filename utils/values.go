package utils

import (
	"strconv"
	"strings"
)

// TextKey is the map key holding an element's own text when it also has attributes.
const TextKey = "$"

// Map returns v as a map.
func Map(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// List returns v as a list. A nil value gives nil and a single non-list value
// becomes a one-element list, matching how a repeated element that occurs
// once is decoded.
func List(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}

		return out
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}

		return out
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}

		return out
	default:
		return []any{v}
	}
}

// Maps returns the maps found in v (see List), skipping other items.
func Maps(v any) []map[string]any {
	var out []map[string]any

	for _, item := range List(v) {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}

	return out
}

// Text returns the element text of v: the "$" entry of a map, or v itself.
func Text(v any) any {
	if m, ok := v.(map[string]any); ok {
		return m[TextKey]
	}

	return v
}

// Lookup walks nested maps along keys.
func Lookup(v any, keys ...string) (any, bool) {
	for _, k := range keys {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}

		v, ok = m[k]
		if !ok {
			return nil, false
		}
	}

	return v, true
}

// Float converts numeric and numeric-string values to float64.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int converts integral values to int. Floats are accepted only when integral.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}

		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

// Floats converts every element of v (see List) to float64.
func Floats(v any) ([]float64, bool) {
	items := List(v)
	out := make([]float64, 0, len(items))

	for _, item := range items {
		f, ok := Float(item)
		if !ok {
			return nil, false
		}

		out = append(out, f)
	}

	return out, true
}

// Ints converts every element of v (see List) to int.
func Ints(v any) ([]int, bool) {
	items := List(v)
	out := make([]int, 0, len(items))

	for _, item := range items {
		n, ok := Int(item)
		if !ok {
			return nil, false
		}

		out = append(out, n)
	}

	return out, true
}

// Bool reports the truth value of v. Strings follow the XML boolean lexical space.
func Bool(v any) (value, ok bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", ".true.", "t":
			return true, true
		case "false", "0", ".false.", "f":
			return false, true
		}
	}

	return false, false
}

// Truthy applies the usual "is set" test: non-zero numbers, true booleans
// and non-empty strings, lists and maps.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}

	if f, ok := Float(v); ok {
		return f != 0
	}

	return true
}

// String returns v as a trimmed string when it is one.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return strings.TrimSpace(s), ok
}
