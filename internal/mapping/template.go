package mapping

import "slices"

//go:generate go tool stringer -type=LeafKind -trimprefix=Leaf -output=leafkind_string.go

// LeafKind discriminates the entries of a template tree.
type LeafKind int

const (
	LeafBranch LeafKind = iota
	LeafParam
	LeafVariant
	LeafFanOut
)

// Template is a named mapping tree loaded from YAML.
type Template struct {
	Version string  `yaml:"version"`
	Name    string  `yaml:"name"`
	Map     *Branch `yaml:"map"`
}

// Clone returns a deep copy of the template.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}

	c := *t
	if t.Map != nil {
		c.Map = t.Map.Clone().(*Branch)
	}

	return &c
}

// Entry is a node of a template tree.
type Entry interface {
	Kind() LeafKind
	Clone() Entry
}

// Branch is an inner template node. Keys keep their declaration order.
type Branch struct {
	keys     []string
	children map[string]Entry
}

// NewBranch creates an empty branch.
func NewBranch() *Branch {
	return &Branch{children: make(map[string]Entry)}
}

func (b *Branch) Kind() LeafKind { return LeafBranch }

// Clone returns a deep copy of the branch.
func (b *Branch) Clone() Entry {
	c := &Branch{
		keys:     slices.Clone(b.keys),
		children: make(map[string]Entry, len(b.children)),
	}

	for k, e := range b.children {
		c.children[k] = e.Clone()
	}

	return c
}

// Keys returns the child keys in declaration order.
func (b *Branch) Keys() []string {
	return slices.Clone(b.keys)
}

// Len returns the number of children.
func (b *Branch) Len() int {
	return len(b.keys)
}

// Get returns the child stored under key.
func (b *Branch) Get(key string) (Entry, bool) {
	e, ok := b.children[key]
	return e, ok
}

// Set stores e under key. A new key is appended, an existing one keeps its position.
func (b *Branch) Set(key string, e Entry) {
	if b.children == nil {
		b.children = make(map[string]Entry)
	}

	if _, ok := b.children[key]; !ok {
		b.keys = append(b.keys, key)
	}

	b.children[key] = e
}

// Param is an invariant target.
type Param string

func (p Param) Kind() LeafKind { return LeafParam }
func (p Param) Clone() Entry    { return p }

// Variant routes a value to an accumulator whose encoder renders it later.
type Variant struct {
	Target  string `yaml:"target"`
	Encoder string `yaml:"encoder,omitempty"`
	Decoder string `yaml:"decoder,omitempty"`
}

func (v *Variant) Kind() LeafKind { return LeafVariant }

func (v *Variant) Clone() Entry {
	c := *v
	return &c
}

// FanOut sends one document value to several targets.
type FanOut []Entry

func (f FanOut) Kind() LeafKind { return LeafFanOut }

func (f FanOut) Clone() Entry {
	c := make(FanOut, len(f))
	for i, e := range f {
		c[i] = e.Clone()
	}

	return c
}
