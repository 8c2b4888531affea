package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"namelist-generator/utils"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

type xmlFrame struct {
	tag      string
	content  map[string]any
	repeated map[string]bool
	text     strings.Builder
}

func (f *xmlFrame) add(tag string, v any) {
	existing, seen := f.content[tag]

	switch {
	case !seen:
		f.content[tag] = v
	case f.repeated[tag]:
		f.content[tag] = append(existing.([]any), v)
	default:
		f.content[tag] = []any{existing, v}
		f.repeated[tag] = true
	}

}

// value is the element content: bare text, or a map when the element has
// attributes or children.
func (f *xmlFrame) value() any {
	text := strings.TrimSpace(f.text.String())

	if len(f.content) == 0 {
		return text
	}

	if text != "" {
		f.content[utils.TextKey] = text
	}

	return f.content
}

func parseXML(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		stack []*xmlFrame
		doc   *Document
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse XML document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			frame := &xmlFrame{tag: t.Name.Local, content: make(map[string]any), repeated: make(map[string]bool)}

			for _, attr := range t.Attr {
				if skipAttr(attr.Name) {
					continue
				}

				frame.content["@"+attr.Name.Local] = strings.TrimSpace(attr.Value)
			}

			stack = append(stack, frame)
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if len(stack) > 0 {
				stack[len(stack)-1].add(frame.tag, frame.value())
				continue
			}

			content, _ := utils.Map(frame.value())
			if content == nil {
				content = make(map[string]any)
			}

			doc = &Document{Root: frame.tag, Format: FormatXML, Data: content}
		}
	}

	if doc == nil {
		return nil, errors.New("failed to parse XML document: no root element")
	}

	return doc, nil
}

func skipAttr(name xml.Name) bool {
	return name.Space == "xmlns" || name.Local == "xmlns" || name.Space == "xsi" || name.Space == xsiNamespace
}
