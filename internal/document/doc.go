// Package document reads configuration documents into a generic tree and
// walks that tree into a router such as the assembly engine.
//
// XML, JSON and YAML sources decode to the same shape: an element is a
// map[string]any with "@name" keys for attributes, child elements under
// their tag and the element text under "$"; an element without attributes
// or children is its bare value; repeated children become a []any.
package document
