package converter

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"namelist-generator/internal/cards"
	"namelist-generator/internal/engine"
	"namelist-generator/internal/mapping"
	"namelist-generator/internal/schema"
	"namelist-generator/options"
)

//go:embed templates/*.yaml schemas/*.yaml
var assets embed.FS

const (
	templateDir = "templates"
	schemaDir   = "schemas"

	// nebEngineKey is the branch of the NEB template holding the pw template.
	nebEngineKey       = "engine"
	nebEngineOverrides = "neb_engine.yaml"
	pwTemplate         = "pw.yaml"
)

// Compiled is the shared, read-only part of a converter kind.
type Compiled struct {
	Kind   Kind
	Maps   *mapping.Maps
	Schema *schema.Table
}

// Encoders returns the registry of every card and derivation encoder.
var Encoders = sync.OnceValue(func() *engine.Registry {
	reg := engine.NewRegistry()
	cards.Register(reg)
	options.Register(reg)

	return reg
})

// Decoders returns the registry of every value decoder templates may name.
var Decoders = sync.OnceValue(func() *engine.DecoderRegistry {
	reg := engine.NewDecoderRegistry()
	options.RegisterDecoders(reg)

	return reg
})

var compiled = func() map[Kind]func() (*Compiled, error) {
	m := make(map[Kind]func() (*Compiled, error), len(kindDefs))
	for _, k := range Kinds() {
		m[k] = sync.OnceValues(func() (*Compiled, error) { return compile(k) })
	}

	return m
}()

// Compile returns the compiled maps and schema table of a kind. They are
// built on first use and shared afterwards.
func Compile(k Kind) (*Compiled, error) {
	build, ok := compiled[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}

	return build()
}

func compile(k Kind) (*Compiled, error) {
	def := kindDefs[k]

	tpl, err := Template(k)
	if err != nil {
		return nil, err
	}

	maps, err := mapping.Compile(tpl, Encoders(), Decoders())
	if err != nil {
		return nil, fmt.Errorf("compiling %s template: %w", k, err)
	}

	table, err := loadSchema(def.schema)
	if err != nil {
		return nil, err
	}

	return &Compiled{Kind: k, Maps: maps, Schema: table}, nil
}

// Template returns a fresh copy of the template of a kind. The NEB template
// embeds the pw template under its engine branch, overlaid with
// neb_engine.yaml.
func Template(k Kind) (*mapping.Template, error) {
	def, ok := kindDefs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}

	tpl, err := loadTemplate(def.template)
	if err != nil {
		return nil, err
	}

	if k != KindNEB {
		return tpl, nil
	}

	pw, err := loadTemplate(pwTemplate)
	if err != nil {
		return nil, err
	}

	overrides, err := loadTemplate(nebEngineOverrides)
	if err != nil {
		return nil, err
	}

	engineMap := pw.Clone().Map
	overlay(engineMap, overrides.Map)

	tpl.Map.Set(nebEngineKey, engineMap)

	return tpl, nil
}

// overlay sets every entry of src on dst. Branches present on both sides are
// merged key by key; any other entry replaces its namesake.
func overlay(dst, src *mapping.Branch) {
	for _, key := range src.Keys() {
		e, _ := src.Get(key)

		if sb, ok := e.(*mapping.Branch); ok {
			if cur, found := dst.Get(key); found {
				if db, isBranch := cur.(*mapping.Branch); isBranch {
					overlay(db, sb)
					continue
				}
			}
		}

		dst.Set(key, e.Clone())
	}
}

func loadTemplate(name string) (*mapping.Template, error) {
	data, err := assets.ReadFile(path.Join(templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tpl, err := mapping.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}

	return tpl, nil
}

func loadSchema(name string) (*schema.Table, error) {
	data, err := assets.ReadFile(path.Join(schemaDir, name))
	if err != nil {
		return nil, fmt.Errorf("reading schema table %s: %w", name, err)
	}

	table, err := schema.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema table %s: %w", name, err)
	}

	return table, nil
}
