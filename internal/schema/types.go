package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the lexical type of an element or attribute value.
type Type string

const (
	TypeString   Type = "string"
	TypeBoolean  Type = "boolean"
	TypeInteger  Type = "integer"
	TypeDouble   Type = "double"
	TypeIntegers Type = "integers" // whitespace separated list
	TypeDoubles  Type = "doubles"  // whitespace separated list
)

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeBoolean, TypeInteger, TypeDouble, TypeIntegers, TypeDoubles:
		return true
	}

	return false
}

// Decode converts trimmed text to a value of type t.
func Decode(t Type, text string) (any, error) {
	text = strings.TrimSpace(text)

	switch t {
	case TypeString, "":
		return text, nil
	case TypeBoolean:
		b, ok := parseBool(text)
		if !ok {
			return nil, fmt.Errorf("invalid boolean %q", text)
		}

		return b, nil
	case TypeInteger:
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", text)
		}

		return n, nil
	case TypeDouble:
		f, err := parseDouble(text)
		if err != nil {
			return nil, err
		}

		return f, nil
	case TypeIntegers, TypeDoubles:
		fields := strings.Fields(text)
		out := make([]any, len(fields))

		for i, field := range fields {
			v, err := Decode(itemType(t), field)
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil
	default:
		return nil, fmt.Errorf("unknown type %q", t)
	}
}

func itemType(t Type) Type {
	if t == TypeIntegers {
		return TypeInteger
	}

	return TypeDouble
}

// Infer types text without a declaration: booleans, integers and doubles are
// recognized, whitespace separated numbers become a list, empty text is nil
// and anything else stays a string.
func Infer(text string) any {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	switch text {
	case "true":
		return true
	case "false":
		return false
	}

	fields := strings.Fields(text)
	if len(fields) == 1 {
		if v, ok := inferNumber(text); ok {
			return v
		}

		return text
	}

	out := make([]any, len(fields))
	allInts := true

	for i, field := range fields {
		v, ok := inferNumber(field)
		if !ok {
			return text
		}

		if _, isInt := v.(int); !isInt {
			allInts = false
		}

		out[i] = v
	}

	if !allInts {
		for i, v := range out {
			if n, isInt := v.(int); isInt {
				out[i] = float64(n)
			}
		}
	}

	return out
}

func inferNumber(s string) (any, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	if !strings.ContainsAny(s, "0123456789") {
		return nil, false
	}

	f, err := parseDouble(s)
	if err != nil {
		return nil, false
	}

	return f, true
}

func parseDouble(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid double %q", s)
	}

	return f, nil
}

func parseBool(s string) (value, ok bool) {
	switch s {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}

	return false, false
}
