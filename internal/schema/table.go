package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"namelist-generator/internal/common"
	"namelist-generator/internal/diagnostic"
)

// Attribute declares an attribute of an element.
type Attribute struct {
	Type    Type    `yaml:"type"`
	Default *string `yaml:"default,omitempty"`

	value any
}

// Element declares the text type, default and attributes of an element.
type Element struct {
	Type       Type                  `yaml:"type,omitempty"`
	Default    *string               `yaml:"default,omitempty"`
	Attributes map[string]*Attribute `yaml:"attributes,omitempty"`

	value any
}

// Table is a parsed schema table.
type Table struct {
	Name     string              `yaml:"name"`
	Root     string              `yaml:"root"`
	Elements map[string]*Element `yaml:"elements"`
}

// Default is the synthesized content of an element absent from a document.
type Default struct {
	Path       string         // relative to the table root
	Tag        string         // element name
	Attributes map[string]any // "@name" keyed decoded defaults
	Value      any            // decoded element default, nil when none
	HasValue   bool
	Complex    bool // the element declares attributes
}

// Parse reads a table and decodes its defaults.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse schema table: %w", err)
	}

	if err := t.check(); err != nil {
		return nil, err
	}

	return &t, nil
}

// LoadFile reads a table from a file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema table: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func (t *Table) check() error {
	diags := &diagnostic.Diagnostics{}

	for _, path := range common.SortedKeys(t.Elements) {
		el := t.Elements[path]
		if el == nil {
			t.Elements[path] = &Element{Type: TypeString}
			continue
		}

		if !strings.HasPrefix(path, "./") {
			diags.AddError("invalid_path", "element paths start with ./", t.Name, path)
		}

		if el.Type == "" {
			el.Type = TypeString
		}

		if !el.Type.Valid() {
			diags.AddError("unknown_type", fmt.Sprintf("unknown type %q", el.Type), t.Name, path)
			continue
		}

		if el.Default != nil {
			v, err := Decode(el.Type, *el.Default)
			if err != nil {
				diags.AddError("invalid_default", err.Error(), t.Name, path)
			}

			el.value = v
		}

		for _, name := range common.SortedKeys(el.Attributes) {
			attr := el.Attributes[name]
			if attr == nil {
				el.Attributes[name] = &Attribute{Type: TypeString}
				continue
			}

			if attr.Type == "" {
				attr.Type = TypeString
			}

			if !attr.Type.Valid() {
				diags.AddError("unknown_type", fmt.Sprintf("unknown type %q", attr.Type), t.Name, path+"/@"+name)
				continue
			}

			if attr.Default != nil {
				v, err := Decode(attr.Type, *attr.Default)
				if err != nil {
					diags.AddError("invalid_default", err.Error(), t.Name, path+"/@"+name)
				}

				attr.value = v
			}
		}
	}

	return diags.Error()
}

// Element returns the declaration of the element at path.
func (t *Table) Element(path string) (*Element, bool) {
	if t == nil {
		return nil, false
	}

	el, ok := t.Elements[path]

	return el, ok
}

// DecodeText decodes the text of the element at path, inferring the type of
// undeclared elements.
func (t *Table) DecodeText(path, text string) (any, error) {
	el, ok := t.Element(path)
	if !ok {
		return Infer(text), nil
	}

	v, err := Decode(el.Type, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// DecodeAttr decodes an attribute value of the element at path.
func (t *Table) DecodeAttr(path, name, text string) (any, error) {
	el, ok := t.Element(path)
	if !ok {
		return Infer(text), nil
	}

	attr, ok := el.Attributes[name]
	if !ok {
		return Infer(text), nil
	}

	v, err := Decode(attr.Type, text)
	if err != nil {
		return nil, fmt.Errorf("%s/@%s: %w", path, name, err)
	}

	return v, nil
}

// Declared reports whether the element at path has a declared type.
func (t *Table) Declared(path string) bool {
	_, ok := t.Element(path)
	return ok
}

// Defaults returns the defaults of the elements below prefix, sorted by path.
// Elements with neither an own nor an attribute default are left out.
func (t *Table) Defaults(prefix string) []Default {
	if t == nil {
		return nil
	}

	var out []Default

	for _, path := range common.SortedKeys(t.Elements) {
		if !strings.HasPrefix(path, prefix+"/") {
			continue
		}

		el := t.Elements[path]
		d := Default{
			Path:     path,
			Tag:      path[strings.LastIndex(path, "/")+1:],
			Value:    el.value,
			HasValue: el.Default != nil,
			Complex:  len(el.Attributes) > 0,
		}

		for _, name := range common.SortedKeys(el.Attributes) {
			attr := el.Attributes[name]
			if attr.Default == nil {
				continue
			}

			if d.Attributes == nil {
				d.Attributes = make(map[string]any)
			}

			d.Attributes["@"+name] = attr.value
		}

		if d.HasValue || len(d.Attributes) > 0 {
			out = append(out, d)
		}
	}

	return out
}

// Paths returns the declared element paths, sorted.
func (t *Table) Paths() []string {
	if t == nil {
		return nil
	}

	return common.SortedKeys(t.Elements)
}
