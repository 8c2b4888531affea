package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"

	"namelist-generator/internal/schema"
	"namelist-generator/utils"
)

// Format is a source serialization.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unknown document format %q", s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot tell the format of %q", path)
	}

	return ParseFormat(ext)
}

// Document is a decoded document: the root element name and its content.
type Document struct {
	Root   string
	Format Format
	Source string
	Data   map[string]any
}

// ReadFile reads a document. An empty format is guessed from the extension.
func ReadFile(path string, format Format) (*Document, error) {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}

		format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc.Source = path

	return doc, nil
}

// Parse decodes a document. XML text is kept as strings until Decode; JSON
// and YAML keep their own scalar types. A JSON or YAML document made of a
// single object entry names its root element by that key.
func Parse(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatXML:
		return parseXML(data)
	case FormatJSON:
		v, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}

		return fromValue(v, format)
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}

		return fromValue(v, format)
	}

	return nil, fmt.Errorf("unknown document format %q", format)
}

func fromValue(v any, format Format) (*Document, error) {
	m, ok := utils.Map(v)
	if !ok {
		return nil, fmt.Errorf("document is not an object but %T", v)
	}

	if len(m) == 1 {
		for root, content := range m {
			if inner, ok := utils.Map(content); ok {
				return &Document{Root: root, Format: format, Data: inner}, nil
			}
		}
	}

	return &Document{Format: format, Data: m}, nil
}

// Decode types the document text with table. Every XML text is decoded,
// undeclared elements by inference; in JSON and YAML documents only strings
// of declared elements are converted.
func (d *Document) Decode(table *schema.Table) error {
	data, err := d.decode(".", d.Data, table)
	if err != nil {
		return err
	}

	d.Data, _ = utils.Map(data)

	return nil
}

func (d *Document) decode(path string, v any, table *schema.Table) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for key, child := range t {
			var (
				decoded any
				err     error
			)

			switch {
			case strings.HasPrefix(key, "@"):
				decoded, err = d.decodeAttr(path, key[1:], child, table)
			case key == utils.TextKey:
				decoded, err = d.decodeText(path, child, table)
			default:
				decoded, err = d.decode(path+"/"+key, child, table)
			}

			if err != nil {
				return nil, err
			}

			t[key] = decoded
		}

		return t, nil
	case []any:
		for i, item := range t {
			decoded, err := d.decode(path, item, table)
			if err != nil {
				return nil, err
			}

			t[i] = decoded
		}

		return t, nil
	default:
		return d.decodeText(path, v, table)
	}
}

func (d *Document) decodeText(path string, v any, table *schema.Table) (any, error) {
	s, ok := v.(string)
	if !ok || (d.Format != FormatXML && !table.Declared(path)) {
		return v, nil
	}

	return table.DecodeText(path, s)
}

func (d *Document) decodeAttr(path, name string, v any, table *schema.Table) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}

	if d.Format != FormatXML {
		el, declared := table.Element(path)
		if !declared {
			return v, nil
		}

		if _, declared = el.Attributes[name]; !declared {
			return v, nil
		}
	}

	return table.DecodeAttr(path, name, s)
}

// Select returns the content of the first element matched by a JSONPath
// expression, such as "$.input".
func (d *Document) Select(expr string) (map[string]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", expr, err)
	}

	for _, found := range x.Get(d.Data) {
		if m, ok := utils.Map(found); ok {
			return m, nil
		}
	}

	return nil, fmt.Errorf("no element matches %q", expr)
}
