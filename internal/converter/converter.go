package converter

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"namelist-generator/internal/document"
	"namelist-generator/internal/engine"
	"namelist-generator/internal/mapping"
	"namelist-generator/internal/schema"
	"namelist-generator/utils"
)

// Options configures a converter.
type Options struct {
	// Kind selects the converter; KindAuto detects it from the document root.
	Kind Kind
	// Schema replaces the built-in type and default table.
	Schema *schema.Table
	// Template replaces the built-in template. It is compiled against the
	// built-in encoders and the kind's declared groups.
	Template *mapping.Template
	// NoDefaults disables the synthesis of values absent from the document.
	NoDefaults bool
	// SourceFile names the document in the generated input. Empty uses the
	// path the document was read from.
	SourceFile string
	// Logger receives degraded-data reports.
	Logger *zap.Logger
}

// DefaultOptions returns the default converter options.
func DefaultOptions() Options {
	return Options{
		Kind:   KindAuto,
		Logger: zap.NewNop(),
	}
}

// Converter turns documents of one kind into program input. A Converter
// reuses its engine and is not safe for concurrent use.
type Converter struct {
	kind   Kind
	def    kindDef
	table  *schema.Table
	engine *engine.Engine
	opts   Options
	log    *zap.Logger
}

// New creates a converter for a concrete kind.
func New(kind Kind, opts Options) (*Converter, error) {
	def, ok := kindDefs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	c, err := Compile(kind)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log = log.With(zap.Stringer("kind", kind))

	maps := c.Maps
	if opts.Template != nil {
		if maps, err = mapping.Compile(opts.Template, Encoders(), Decoders()); err != nil {
			return nil, fmt.Errorf("compiling template %q: %w", opts.Template.Name, err)
		}
	}

	e, err := engine.New(maps, Encoders(), def.groups,
		engine.WithLogger(log), engine.WithLayout(def.layout),
		engine.WithDecoders(Decoders()))
	if err != nil {
		return nil, fmt.Errorf("creating %s engine: %w", kind, err)
	}

	table := c.Schema
	if opts.Schema != nil {
		table = opts.Schema
	}

	return &Converter{
		kind:   kind,
		def:    def,
		table:  table,
		engine: e,
		opts:   opts,
		log:    log,
	}, nil
}

// Kind returns the kind the converter was created for.
func (c *Converter) Kind() Kind {
	return c.kind
}

// Convert decodes doc with the converter's table and renders it. Previous
// conversions leave no state behind. Decoding rewrites the values of doc in
// place; decoding an already decoded document changes nothing, so doc may be
// converted again.
func (c *Converter) Convert(doc *document.Document) (string, error) {
	if doc.Root != "" && doc.Root != c.def.root {
		c.log.Warn("document root does not match the converter",
			zap.String("root", doc.Root), zap.String("expected", c.def.root))
	}

	if err := doc.Decode(c.table); err != nil {
		return "", fmt.Errorf("decoding document: %w", err)
	}

	c.engine.Clear()
	c.seed(doc)

	opts := []document.Option{document.WithLogger(c.log)}
	if c.def.defaults && !c.opts.NoDefaults {
		opts = append(opts, document.WithDefaults(c.table))
	}

	report, err := document.Walk(doc, c.def.subRoot, c.engine, opts...)
	if err != nil {
		return "", err
	}

	c.log.Debug("document walked",
		zap.Int("routed", report.Routed), zap.Int("unrouted", len(report.Unrouted)))

	return c.engine.Render()
}

// seed stores values that come from the conversion rather than the document.
func (c *Converter) seed(doc *document.Document) {
	if c.kind != KindPW {
		return
	}

	source := c.opts.SourceFile
	if source == "" {
		source = doc.Source
	}

	if source != "" {
		c.engine.SetScalar("CONTROL", "input_xml_schema_file", utils.Quote(filepath.Base(source)))
	}
}

// Unmapped returns the document leaves no template entry of the converter
// consumes, each with the closest template paths.
func (c *Converter) Unmapped(doc *document.Document) ([]document.Unrouted, error) {
	return document.Unmapped(doc, c.def.subRoot, c.engine)
}

// Dump returns the accumulated state of the last conversion.
func (c *Converter) Dump() string {
	return c.engine.Dump()
}

// Resolve returns the kind to use for doc: opts.Kind, or the kind detected
// from the document root for KindAuto.
func Resolve(doc *document.Document, kind Kind) (Kind, error) {
	if kind != KindAuto {
		return kind, nil
	}

	return DetectKind(doc.Root)
}

// Convert converts doc with a converter of the kind selected by opts.
func Convert(doc *document.Document, opts Options) (string, error) {
	kind, err := Resolve(doc, opts.Kind)
	if err != nil {
		return "", err
	}

	c, err := New(kind, opts)
	if err != nil {
		return "", err
	}

	return c.Convert(doc)
}
