package mapping

import (
	"slices"
)

// NameSet is what the compiler needs from a registry: membership and the
// known names for suggestions.
type NameSet interface {
	Has(name string) bool
	Names() []string
}

// Registry maps encoder or decoder names to implementations.
type Registry[T any] struct {
	items map[string]T
}

// NewRegistry creates a new empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Add stores item under name, replacing any previous entry.
func (r *Registry[T]) Add(name string, item T) {
	r.items[name] = item
}

// Get returns the item stored under name.
func (r *Registry[T]) Get(name string) (T, bool) {
	item, ok := r.items[name]
	return item, ok
}

// Has returns true if an item with the given name exists.
func (r *Registry[T]) Has(name string) bool {
	if r == nil {
		return false
	}

	_, exists := r.items[name]

	return exists
}

// Names returns all names in lexical order.
func (r *Registry[T]) Names() []string {
	if r == nil {
		return nil
	}

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int {
	return len(r.items)
}
