package mapping

import (
	"fmt"
	"slices"
	"strings"

	"namelist-generator/internal/common"
	"namelist-generator/internal/diagnostic"
	"namelist-generator/internal/match"
)

// RootPath is the path of the template root.
const RootPath = "."

const suggestLimit = 3

// Descriptor is one variant destination of a document path.
type Descriptor struct {
	Target  Target
	Encoder string
	Decoder string
}

// Bimap is the invariant table: a bijection between paths and targets.
type Bimap struct {
	forward map[string]Target
	inverse map[Target]string
}

func newBimap() *Bimap {
	return &Bimap{
		forward: make(map[string]Target),
		inverse: make(map[Target]string),
	}
}

// Get returns the target of path.
func (b *Bimap) Get(path string) (Target, bool) {
	t, ok := b.forward[path]
	return t, ok
}

// Key returns the path mapped to target.
func (b *Bimap) Key(t Target) (string, bool) {
	p, ok := b.inverse[t]
	return p, ok
}

// Len returns the number of pairs.
func (b *Bimap) Len() int {
	return len(b.forward)
}

// Paths returns all paths in lexical order.
func (b *Bimap) Paths() []string {
	return common.SortedKeys(b.forward)
}

// Maps is a compiled template. It is immutable once returned by Compile.
type Maps struct {
	Name      string
	Invariant *Bimap
	Variant   map[string][]Descriptor
}

// Contains reports whether path is routed by either table.
func (m *Maps) Contains(path string) bool {
	if _, ok := m.Invariant.forward[path]; ok {
		return true
	}

	_, ok := m.Variant[path]

	return ok
}

// Paths returns every routed path in lexical order.
func (m *Maps) Paths() []string {
	paths := m.Invariant.Paths()
	for p := range m.Variant {
		if _, ok := m.Invariant.forward[p]; !ok {
			paths = append(paths, p)
		}
	}

	slices.Sort(paths)

	return paths
}

// Groups returns every group referenced by a target, in lexical order.
func (m *Maps) Groups() []string {
	set := make(map[string]struct{})
	for _, t := range m.Invariant.forward {
		set[t.Group] = struct{}{}
	}

	for _, ds := range m.Variant {
		for _, d := range ds {
			set[d.Target.Group] = struct{}{}
		}
	}

	return common.SortedKeys(set)
}

type compiler struct {
	name     string
	encoders NameSet
	decoders NameSet
	diags    *diagnostic.Diagnostics
	maps     *Maps
	leaves   map[string]struct{}
}

// Compile flattens t into an invariant bijection and a variant map. Encoder
// and decoder names must be present in the given sets. Every structural
// problem is reported together in one *StructuralError.
func Compile(t *Template, encoders, decoders NameSet) (*Maps, error) {
	diags := &diagnostic.Diagnostics{}

	if t == nil || t.Map == nil {
		diags.AddError("template_is_nil", "template is nil", "", "")
		return nil, &StructuralError{Diagnostics: diags}
	}

	c := &compiler{
		name:     t.Name,
		encoders: encoders,
		decoders: decoders,
		diags:    diags,
		maps: &Maps{
			Name:      t.Name,
			Invariant: newBimap(),
			Variant:   make(map[string][]Descriptor),
		},
		leaves: make(map[string]struct{}),
	}

	c.walk(t.Map, RootPath)
	c.checkOverlap()

	if diags.HasErrors() {
		return nil, &StructuralError{Template: t.Name, Diagnostics: diags}
	}

	return c.maps, nil
}

func (c *compiler) walk(b *Branch, prefix string) {
	for _, key := range b.keys {
		if key == "" {
			c.diags.AddError("empty_key", "empty template key", c.name, prefix)
			continue
		}

		path := prefix + "/" + key

		switch e := b.children[key].(type) {
		case *Branch:
			c.walk(e, path)
		case Param:
			if c.claim(path) {
				c.addInvariant(path, string(e))
			}
		case *Variant:
			if c.claim(path) {
				c.addVariant(path, e)
			}
		case FanOut:
			if c.claim(path) {
				c.addFanOut(path, e)
			}
		default:
			c.diags.AddError("invalid_entry", fmt.Sprintf("unsupported entry %T", e), c.name, path)
		}
	}
}

// claim registers a leaf path; two template positions may not produce the same path.
func (c *compiler) claim(path string) bool {
	if _, seen := c.leaves[path]; seen {
		c.diags.AddError("duplicate_path", "path is produced by more than one template position", c.name, path)
		return false
	}

	c.leaves[path] = struct{}{}

	return true
}

func (c *compiler) addInvariant(path, raw string) {
	t, err := ParseTarget(raw)
	if err != nil {
		c.diags.AddError("malformed_target", err.Error(), c.name, path)
		return
	}

	if t.IsWhole() {
		c.diags.AddError("bare_invariant",
			fmt.Sprintf("invariant target %q must name a parameter", raw), c.name, path)

		return
	}

	if other, dup := c.maps.Invariant.inverse[t]; dup {
		c.diags.AddError("duplicate_target",
			fmt.Sprintf("target %s is also mapped from %s", t, other), c.name, path)

		return
	}

	c.maps.Invariant.forward[path] = t
	c.maps.Invariant.inverse[t] = path
}

func (c *compiler) addVariant(path string, v *Variant) {
	t, err := ParseTarget(v.Target)
	if err != nil {
		c.diags.AddError("malformed_target", err.Error(), c.name, path)
		return
	}

	c.checkName(path, "encoder", v.Encoder, c.encoders)
	c.checkName(path, "decoder", v.Decoder, c.decoders)

	c.maps.Variant[path] = append(c.maps.Variant[path], Descriptor{
		Target:  t,
		Encoder: v.Encoder,
		Decoder: v.Decoder,
	})
}

func (c *compiler) addFanOut(path string, f FanOut) {
	if len(f) == 0 {
		c.diags.AddError("empty_fanout", "fan-out list is empty", c.name, path)
		return
	}

	params := 0

	for _, item := range f {
		switch e := item.(type) {
		case Param:
			params++
			if params > 1 {
				c.diags.AddError("ambiguous_fanout",
					"fan-out holds more than one invariant target", c.name, path)

				continue
			}

			c.addInvariant(path, string(e))
		case *Variant:
			c.addVariant(path, e)
		default:
			c.diags.AddError("invalid_entry", fmt.Sprintf("unsupported fan-out item %T", e), c.name, path)
		}
	}
}

func (c *compiler) checkName(path, role, name string, known NameSet) {
	if name == "" {
		return
	}

	if known != nil && known.Has(name) {
		return
	}

	var candidates []string
	if known != nil {
		candidates = known.Names()
	}

	c.diags.AddError("unknown_"+role, fmt.Sprintf("unknown %s %q", role, name), c.name, path).
		WithSuggestions(match.Suggest(name, candidates, suggestLimit)...)
}

// checkOverlap rejects variant targets that are also invariant targets.
func (c *compiler) checkOverlap() {
	for _, path := range common.SortedKeys(c.maps.Variant) {
		for _, d := range c.maps.Variant[path] {
			if d.Target.IsWhole() {
				continue
			}

			if other, ok := c.maps.Invariant.inverse[d.Target]; ok {
				c.diags.AddError("variant_overlaps_invariant",
					fmt.Sprintf("target %s is also the invariant target of %s", d.Target, other),
					c.name, path)
			}
		}
	}
}

// SplitPath returns the parent path and the trailing keyword of path.
func SplitPath(path string) (parent, keyword string) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", path
	}

	return path[:i], path[i+1:]
}
