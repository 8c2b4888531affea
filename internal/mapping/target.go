package mapping

import (
	"fmt"
	"regexp"
)

var targetPattern = regexp.MustCompile(`^(\w+)(?:\[(\w+(?:%\w+)*)\])?$`)

// Target addresses a parameter inside a namelist or card, or a whole card
// when Name is empty.
type Target struct {
	Group string
	Name  string
}

// ParseTarget parses "GROUP", "GROUP[NAME]" or "GROUP[NAME%SUB...]".
func ParseTarget(s string) (Target, error) {
	m := targetPattern.FindStringSubmatch(s)
	if m == nil {
		return Target{}, fmt.Errorf("invalid target %q", s)
	}

	return Target{Group: m[1], Name: m[2]}, nil
}

// IsWhole reports whether the target addresses an entire group.
func (t Target) IsWhole() bool {
	return t.Name == ""
}

func (t Target) String() string {
	if t.Name == "" {
		return t.Group
	}

	return t.Group + "[" + t.Name + "]"
}
