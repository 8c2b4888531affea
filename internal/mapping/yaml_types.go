package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var variantKeys = map[string]bool{
	"target":  true,
	"encoder": true,
	"decoder": true,
}

// UnmarshalYAML implements custom YAML unmarshaling for Branch.
// Keys keep document order.
func (b *Branch) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping, got %s", node.Line, kindName(node.Kind))
	}

	*b = Branch{children: make(map[string]Entry, len(node.Content)/2)}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		key := keyNode.Value
		if _, exists := b.children[key]; exists {
			return fmt.Errorf("line %d: key %q already defined", keyNode.Line, key)
		}

		entry, err := decodeEntry(valueNode)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		b.Set(key, entry)
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for Branch.
func (b *Branch) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}

	for _, key := range b.keys {
		value, err := encodeEntry(b.children[key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		out.Content = append(out.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}

	return out, nil
}

func decodeEntry(node *yaml.Node) (Entry, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, fmt.Errorf("line %d: empty leaf", node.Line)
		}

		return Param(node.Value), nil

	case yaml.MappingNode:
		if isVariantNode(node) {
			var v Variant
			if err := node.Decode(&v); err != nil {
				return nil, err
			}

			return &v, nil
		}

		b := NewBranch()
		if err := b.UnmarshalYAML(node); err != nil {
			return nil, err
		}

		return b, nil

	case yaml.SequenceNode:
		fan := make(FanOut, 0, len(node.Content))

		for _, item := range node.Content {
			item = resolveAlias(item)

			switch {
			case item.Kind == yaml.ScalarNode && item.Tag != "!!null":
				fan = append(fan, Param(item.Value))
			case item.Kind == yaml.MappingNode && isVariantNode(item):
				var v Variant
				if err := item.Decode(&v); err != nil {
					return nil, err
				}

				fan = append(fan, &v)
			default:
				return nil, fmt.Errorf("line %d: fan-out items must be targets or descriptors", item.Line)
			}
		}

		return fan, nil

	default:
		return nil, fmt.Errorf("line %d: unexpected %s", node.Line, kindName(node.Kind))
	}
}

func encodeEntry(e Entry) (*yaml.Node, error) {
	var (
		out yaml.Node
		err error
	)

	switch v := e.(type) {
	case Param:
		err = out.Encode(string(v))
	case *Variant:
		err = out.Encode(v)
	case *Branch:
		var m any

		m, err = v.MarshalYAML()
		if err == nil {
			return m.(*yaml.Node), nil
		}
	case FanOut:
		out.Kind = yaml.SequenceNode

		for _, item := range v {
			n, itemErr := encodeEntry(item)
			if itemErr != nil {
				return nil, itemErr
			}

			out.Content = append(out.Content, n)
		}
	default:
		err = errors.New("unsupported template entry")
	}

	if err != nil {
		return nil, err
	}

	return &out, nil
}

// isVariantNode reports whether a mapping node is a descriptor: every key
// is a descriptor field and target is present.
func isVariantNode(node *yaml.Node) bool {
	hasTarget := false

	for i := 0; i < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !variantKeys[key] {
			return false
		}

		if key == "target" {
			hasTarget = true
		}
	}

	return hasTarget
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
