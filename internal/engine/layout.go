package engine

import (
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Layout turns rendered sections into output lines.
type Layout interface {
	Arrange(sections []Section, log *zap.Logger) []string
}

// Plain concatenates sections in order.
type Plain struct{}

func (Plain) Arrange(sections []Section, _ *zap.Logger) []string {
	var lines []string
	for _, s := range sections {
		lines = append(lines, s.Lines()...)
	}

	return lines
}

// Wrapper surrounds the output with fixed marker lines and inserts a second
// set of markers right before the Boundary section.
type Wrapper struct {
	Boundary string
	Begin    []string
	Middle   []string
	End      []string
}

func (w Wrapper) Arrange(sections []Section, log *zap.Logger) []string {
	lines := slices.Clone(w.Begin)
	placed := false

	for _, s := range sections {
		if s.Name == w.Boundary && !placed {
			lines = append(lines, w.Middle...)
			placed = true
		}

		lines = append(lines, s.Lines()...)
	}

	if !placed {
		log.Error("boundary section not rendered", zap.String("section", w.Boundary))
		lines = append(lines, w.Middle...)
	}

	return append(lines, w.End...)
}

// Selector keeps a subset of sections chosen by the first body line of the
// Discriminator section: the Leading sections, the section Choices maps that
// value to, then the Trailing sections that are not empty. The discriminator
// section itself is never emitted.
type Selector struct {
	Discriminator string
	Leading       []string
	Choices       map[string]string
	Trailing      []string
}

func (s Selector) Arrange(sections []Section, log *zap.Logger) []string {
	byName := make(map[string]Section, len(sections))
	for _, sec := range sections {
		byName[sec.Name] = sec
	}

	var lines []string

	for _, name := range s.Leading {
		if sec, ok := byName[name]; ok {
			lines = append(lines, sec.Lines()...)
		}
	}

	kind := ""
	if sec, ok := byName[s.Discriminator]; ok && !sec.Empty() {
		kind = strings.ToLower(strings.TrimSpace(sec.Body[0]))
	}

	chosen, ok := s.Choices[kind]
	switch {
	case !ok:
		log.Error("no section selected", zap.String("selector", s.Discriminator), zap.String("value", kind))
	default:
		if sec, found := byName[chosen]; found {
			lines = append(lines, sec.Lines()...)
		}
	}

	for _, name := range s.Trailing {
		if sec, ok := byName[name]; ok && !sec.Empty() {
			lines = append(lines, sec.Lines()...)
		}
	}

	return lines
}
