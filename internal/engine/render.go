package engine

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"namelist-generator/internal/mapping"
)

// Section is one rendered group.
type Section struct {
	Name string
	Kind GroupKind
	Body []string
}

// Lines returns the section with namelist delimiters applied.
func (s Section) Lines() []string {
	if s.Kind == GroupCard {
		return s.Body
	}

	lines := make([]string, 0, len(s.Body)+2)
	lines = append(lines, "&"+s.Name)
	lines = append(lines, s.Body...)

	return append(lines, "/")
}

// Empty reports whether the section carries no entries.
func (s Section) Empty() bool {
	return len(s.Body) == 0
}

// Render produces the output text. Formatter document errors abort the
// render; every other problem is logged and the offending unit is left out.
func (e *Engine) Render() (string, error) {
	sections, err := e.Sections()
	if err != nil {
		return "", err
	}

	if sections == nil {
		return "", nil
	}

	return strings.Join(e.layout.Arrange(sections, e.log), "\n"), nil
}

// Sections renders every declared group that produces output, namelists
// first in declaration order, then cards. It returns nil for an engine that
// holds no data at all.
func (e *Engine) Sections() ([]Section, error) {
	if e.isEmpty() {
		e.log.Error("no input data to render")
		return nil, nil
	}

	var sections []Section

	for _, g := range e.groups {
		if g.Kind != GroupNamelist {
			continue
		}

		st := e.state[g.Name]
		if g.Optional && len(st.entries) == 0 {
			continue
		}

		body, err := e.renderNamelist(g.Name, st)
		if err != nil {
			return nil, err
		}

		sections = append(sections, Section{Name: g.Name, Kind: GroupNamelist, Body: body})
	}

	for _, g := range e.groups {
		if g.Kind != GroupCard {
			continue
		}

		st := e.state[g.Name]
		if st.whole == nil || st.whole.Encoder == nil {
			if !g.Optional {
				e.log.Error("missing conversion function for card", zap.String("card", g.Name))
			}

			continue
		}

		body, err := e.call(g.Name, st.whole)
		if err != nil {
			return nil, err
		}

		sections = append(sections, Section{Name: g.Name, Kind: GroupCard, Body: body})
	}

	return sections, nil
}

func (e *Engine) renderNamelist(name string, st *groupState) ([]string, error) {
	if st.whole != nil {
		e.log.Debug("ignoring whole-group data for namelist", zap.String("namelist", name))
	}

	names := make([]string, 0, len(st.entries))
	for k := range st.entries {
		names = append(names, k)
	}

	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})

	var body []string

	for _, param := range names {
		switch rec := st.entries[param].(type) {
		case Scalar:
			body = append(body, fmt.Sprintf(" %s=%s", param, rec.Text))
		case *Pending:
			if rec.Encoder == nil {
				e.log.Debug("no conversion function for parameter",
					zap.String("namelist", name), zap.String("parameter", param))

				continue
			}

			lines, err := e.call(param, rec)
			if err != nil {
				return nil, err
			}

			body = append(body, lines...)
		}
	}

	return body, nil
}

func (e *Engine) call(name string, rec *Pending) ([]string, error) {
	args := rec.args(name)
	args.Log = e.log.With(zap.String("target", name))

	lines, err := rec.Encoder(args)
	if err == nil {
		return lines, nil
	}

	var docErr *mapping.DocumentError
	if errors.As(err, &docErr) {
		if docErr.Target == "" {
			docErr.Target = name
		}

		return nil, docErr
	}

	return nil, fmt.Errorf("rendering %s: %w", name, err)
}

func (e *Engine) isEmpty() bool {
	for _, st := range e.state {
		if !st.empty() {
			return false
		}
	}

	return true
}
