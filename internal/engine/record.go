package engine

import (
	"maps"
)

//go:generate go tool stringer -type=GroupKind -trimprefix=Group -output=groupkind_string.go

// GroupKind tells namelists from cards.
type GroupKind int

const (
	GroupNamelist GroupKind = iota
	GroupCard
)

// Group is a declared output unit.
type Group struct {
	Name     string
	Kind     GroupKind
	Optional bool
}

// Namelist declares a namelist group.
func Namelist(name string) Group {
	return Group{Name: name, Kind: GroupNamelist}
}

// Card declares a card group.
func Card(name string) Group {
	return Group{Name: name, Kind: GroupCard}
}

// AsOptional marks the group as rendering nothing when it holds no data.
func (g Group) AsOptional() Group {
	g.Optional = true
	return g
}

// Record is the accumulated state of one target.
type Record interface {
	isRecord()
}

// Scalar is a parameter rendered as soon as it was routed.
type Scalar struct {
	Text string
}

func (Scalar) isRecord() {}

// Pending collects values for an encoder that runs at render time.
type Pending struct {
	Encoder     Encoder
	EncoderName string
	Tag         string
	Values      map[string]any

	promoted map[string]bool
}

func (*Pending) isRecord() {}

func newPending() *Pending {
	return &Pending{
		Values:   make(map[string]any),
		promoted: make(map[string]bool),
	}
}

// merge adds node to the values. A key seen for the second time turns into a
// list of all occurrences.
func (p *Pending) merge(node map[string]any) {
	for k, v := range node {
		existing, seen := p.Values[k]

		switch {
		case !seen:
			p.Values[k] = v
		case p.promoted[k]:
			p.Values[k] = append(existing.([]any), v)
		default:
			p.Values[k] = []any{existing, v}
			p.promoted[k] = true
		}
	}
}

func (p *Pending) bind(name string, enc Encoder, tag string) {
	if enc == nil {
		return
	}

	p.Encoder = enc
	p.EncoderName = name
	p.Tag = tag
}

func (p *Pending) args(name string) *Args {
	return &Args{Name: name, Tag: p.Tag, Values: maps.Clone(p.Values)}
}

type groupState struct {
	entries map[string]Record
	whole   *Pending
}

func (g *groupState) empty() bool {
	return len(g.entries) == 0 && g.whole == nil
}
