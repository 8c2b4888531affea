package options

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"namelist-generator/utils"
)

// onText applies f to the text of v. Elements carrying attributes keep them
// and get their "$" entry rewritten in a copy.
func onText(v any, f func(any) (any, error)) (any, error) {
	m, ok := utils.Map(v)
	if !ok {
		return f(v)
	}

	text, ok := m[utils.TextKey]
	if !ok {
		return nil, errors.New("element has no text")
	}

	decoded, err := f(text)
	if err != nil {
		return nil, err
	}

	out := maps.Clone(m)
	out[utils.TextKey] = decoded

	return out, nil
}

func caseDecoder(f func(string) string) func(any) (any, error) {
	return func(v any) (any, error) {
		return onText(v, func(text any) (any, error) {
			s, ok := utils.String(text)
			if !ok {
				return nil, fmt.Errorf("expected a string, got %T", text)
			}

			return f(s), nil
		})
	}
}

// Lower lowercases a string value.
var Lower = caseDecoder(strings.ToLower)

// Upper uppercases a string value.
var Upper = caseDecoder(strings.ToUpper)

// AsList wraps a single value into a one-element list, the way a repeated
// element that occurs once should have been decoded.
func AsList(v any) (any, error) {
	return utils.List(v), nil
}

// FloatList turns a number, a list of numbers or whitespace separated text
// into []float64.
func FloatList(v any) (any, error) {
	return onText(v, func(text any) (any, error) {
		if s, ok := utils.String(text); ok {
			fields := strings.Fields(s)
			items := make([]any, len(fields))
			for i, f := range fields {
				items[i] = f
			}

			text = items
		}

		fs, ok := utils.Floats(text)
		if !ok {
			return nil, fmt.Errorf("expected numbers, got %v", text)
		}

		return fs, nil
	})
}
