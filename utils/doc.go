// Package utils holds accessors for decoded document values and the scalar
// text forms used in generated input files.
//
// Decoded values come from XML (schema-typed), JSON (ojg) or YAML (yaml.v3)
// and so arrive as a mix of int, int64, float64, bool, string, []any and
// map[string]any. The accessors here accept all of them.
package utils
