package engine

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"namelist-generator/internal/common"
	"namelist-generator/internal/diagnostic"
	"namelist-generator/internal/mapping"
	"namelist-generator/utils"
)

// Engine routes document values into per-target accumulators.
type Engine struct {
	maps     *mapping.Maps
	encoders *Registry
	decoders *DecoderRegistry
	groups   []Group
	index    map[string]int
	state    map[string]*groupState
	layout   Layout
	log      *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for degraded-data reports.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithLayout sets the post-processing applied to rendered sections.
func WithLayout(l Layout) Option {
	return func(e *Engine) {
		if l != nil {
			e.layout = l
		}
	}
}

// WithDecoders sets the registry resolving template decoder names.
func WithDecoders(reg *DecoderRegistry) Option {
	return func(e *Engine) {
		e.decoders = reg
	}
}

// New creates an engine over compiled maps. Every group referenced by a
// target must be declared and every encoder and decoder name must resolve.
func New(maps *mapping.Maps, encoders *Registry, groups []Group, opts ...Option) (*Engine, error) {
	if maps == nil {
		return nil, fmt.Errorf("%w: compiled maps are nil", mapping.ErrStructural)
	}

	e := &Engine{
		maps:     maps,
		encoders: encoders,
		groups:   groups,
		index:    make(map[string]int, len(groups)),
		layout:   Plain{},
		log:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	diags := &diagnostic.Diagnostics{}

	for i, g := range groups {
		if _, dup := e.index[g.Name]; dup {
			diags.AddError("duplicate_group", fmt.Sprintf("group %q declared twice", g.Name), maps.Name, "")
			continue
		}

		e.index[g.Name] = i
	}

	for _, name := range maps.Groups() {
		if _, ok := e.index[name]; !ok {
			diags.AddError("undeclared_group", fmt.Sprintf("target group %q is not declared", name), maps.Name, "")
		}
	}

	for _, path := range common.SortedKeys(maps.Variant) {
		for _, d := range maps.Variant[path] {
			if d.Encoder != "" && !encoders.Has(d.Encoder) {
				diags.AddError("unknown_encoder", fmt.Sprintf("unknown encoder %q", d.Encoder), maps.Name, path)
			}

			if d.Decoder != "" && !e.decoders.Has(d.Decoder) {
				diags.AddError("unknown_decoder", fmt.Sprintf("unknown decoder %q", d.Decoder), maps.Name, path)
			}
		}
	}

	if diags.HasErrors() {
		return nil, &mapping.StructuralError{Template: maps.Name, Diagnostics: diags}
	}

	targeted := make(map[string]struct{})
	for _, name := range maps.Groups() {
		targeted[name] = struct{}{}
	}

	for _, g := range groups {
		if _, ok := targeted[g.Name]; !ok {
			diags.AddWarning("untargeted_group", fmt.Sprintf("group %q has no template target", g.Name), maps.Name, "")
		}
	}

	for _, w := range diags.Warnings {
		e.log.Warn(w.Message, zap.String("template", w.Template), zap.String("code", w.Code))
	}

	e.Clear()

	return e, nil
}

// Clear resets the engine to its freshly created state.
func (e *Engine) Clear() {
	e.state = make(map[string]*groupState, len(e.groups))
	for _, g := range e.groups {
		e.state[g.Name] = &groupState{entries: make(map[string]Record)}
	}
}

// Contains reports whether path is routed by the compiled maps.
func (e *Engine) Contains(path string) bool {
	return e.maps.Contains(path)
}

// Paths returns every routed path, sorted.
func (e *Engine) Paths() []string {
	return e.maps.Paths()
}

// Groups returns the declared groups in order.
func (e *Engine) Groups() []Group {
	return append([]Group(nil), e.groups...)
}

// SetPath routes one document node. node must hold exactly one entry keyed
// by tag. The routed value is the tag's value, or, when that is a map and the
// path ends in another keyword, the value stored under that keyword ("$"
// falls back to the whole map). A nil value is ignored.
func (e *Engine) SetPath(path, tag string, node map[string]any) error {
	if len(node) != 1 {
		return fmt.Errorf("node for %s must hold exactly one element, got %d", path, len(node))
	}

	value, ok := node[tag]
	if !ok {
		return fmt.Errorf("node for %s has no element %q", path, tag)
	}

	_, keyword := mapping.SplitPath(path)
	if m, isMap := value.(map[string]any); isMap && keyword != tag {
		if v, found := m[keyword]; found {
			value = v
		} else if keyword != utils.TextKey {
			return fmt.Errorf("node for %s has no %q entry", path, keyword)
		}
	}

	if value == nil {
		e.log.Debug("skipping empty value", zap.String("path", path))
		return nil
	}

	if target, ok := e.maps.Invariant.Get(path); ok {
		e.setInvariant(path, target, value)
	}

	for _, d := range e.maps.Variant[path] {
		e.accumulate(d, tag, node)
	}

	return nil
}

func (e *Engine) setInvariant(path string, target mapping.Target, value any) {
	text, ok := utils.Fortran(value)
	if !ok {
		e.log.Debug("skipping non-scalar value for parameter",
			zap.String("path", path), zap.Stringer("target", target))

		return
	}

	e.SetScalar(target.Group, target.Name, text)
}

// SetScalar stores an already rendered parameter value.
func (e *Engine) SetScalar(group, name, text string) {
	g, ok := e.state[group]
	if !ok {
		e.log.Error("unknown group", zap.String("group", group), zap.String("name", name))
		return
	}

	g.entries[name] = Scalar{Text: text}
}

func (e *Engine) accumulate(d mapping.Descriptor, tag string, node map[string]any) {
	g := e.state[d.Target.Group]

	if d.Decoder != "" {
		dec, _ := e.decoders.Get(d.Decoder)

		value, err := dec(node[tag])
		if err != nil {
			e.log.Error("skipping value the decoder rejected", zap.Stringer("target", d.Target),
				zap.String("decoder", d.Decoder), zap.Error(err))

			return
		}

		node = map[string]any{tag: value}
	}

	var enc Encoder
	if d.Encoder != "" {
		enc, _ = e.encoders.Get(d.Encoder)
	}

	if d.Target.IsWhole() {
		if g.whole == nil {
			g.whole = newPending()
		}

		g.whole.merge(node)
		g.whole.bind(d.Encoder, enc, tag)

		return
	}

	rec, _ := g.entries[d.Target.Name].(*Pending)
	if rec == nil {
		if _, isScalar := g.entries[d.Target.Name].(Scalar); isScalar {
			e.log.Warn("replacing parameter value with accumulated data", zap.Stringer("target", d.Target))
		}

		rec = newPending()
		g.entries[d.Target.Name] = rec
	}

	rec.merge(node)
	rec.bind(d.Encoder, enc, tag)
}

// Dump returns a readable snapshot of the accumulated state.
func (e *Engine) Dump() string {
	type pendingView struct {
		Encoder string
		Tag     string
		Values  map[string]any
	}

	view := make(map[string]map[string]any, len(e.state))

	for name, g := range e.state {
		entries := make(map[string]any, len(g.entries)+1)

		for k, r := range g.entries {
			switch rec := r.(type) {
			case Scalar:
				entries[k] = rec.Text
			case *Pending:
				entries[k] = pendingView{Encoder: rec.EncoderName, Tag: rec.Tag, Values: rec.Values}
			}
		}

		if g.whole != nil {
			entries["*"] = pendingView{Encoder: g.whole.EncoderName, Tag: g.whole.Tag, Values: g.whole.Values}
		}

		view[name] = entries
	}

	cfg := spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}

	return cfg.Sdump(view)
}
