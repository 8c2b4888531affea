package engine

import (
	"fmt"

	"go.uber.org/zap"

	"namelist-generator/internal/mapping"
)

// Encoder renders accumulated values as output lines.
type Encoder func(args *Args) ([]string, error)

// Registry resolves encoder names used in templates.
type Registry = mapping.Registry[Encoder]

// NewRegistry creates an empty encoder registry.
func NewRegistry() *Registry {
	return mapping.NewRegistry[Encoder]()
}

// Args is what an encoder receives: the target name (parameter name, or the
// card name for whole-card accumulators), the tag of the element that bound
// the encoder and every value merged into the accumulator.
type Args struct {
	Name   string
	Tag    string
	Values map[string]any
	Log    *zap.Logger
}

// Get returns a value by key.
func (a *Args) Get(key string) (any, bool) {
	v, ok := a.Values[key]
	return v, ok
}

// Related returns the value stored under the originating tag.
func (a *Args) Related() (any, bool) {
	return a.Get(a.Tag)
}

// Require reports whether every key is present, logging one error that
// names the missing keys otherwise.
func (a *Args) Require(what string, keys ...string) bool {
	var missing []string

	for _, k := range keys {
		if _, ok := a.Values[k]; !ok {
			missing = append(missing, k)
		}
	}

	if len(missing) == 0 {
		return true
	}

	a.Logger().Error(fmt.Sprintf("Missing required arguments when building %s!", what),
		zap.Strings("missing", missing))

	return false
}

// Logger returns the logger to report through, never nil.
func (a *Args) Logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}

	return a.Log
}

// Decoder rewrites the value of an element before it is merged into an
// accumulator.
type Decoder func(value any) (any, error)

// DecoderRegistry resolves decoder names used in templates.
type DecoderRegistry = mapping.Registry[Decoder]

// NewDecoderRegistry creates an empty decoder registry.
func NewDecoderRegistry() *DecoderRegistry {
	return mapping.NewRegistry[Decoder]()
}
