package document

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"namelist-generator/internal/common"
	"namelist-generator/internal/match"
	"namelist-generator/internal/schema"
	"namelist-generator/utils"
)

// Router receives the walked values.
type Router interface {
	Contains(path string) bool
	SetPath(path, tag string, node map[string]any) error
}

// Option configures a walk.
type Option func(*walker)

// WithDefaults synthesizes values for the table elements absent from the
// document.
func WithDefaults(table *schema.Table) Option {
	return func(w *walker) {
		w.defaults = table
	}
}

// WithLogger sets the logger for unrouted paths.
func WithLogger(log *zap.Logger) Option {
	return func(w *walker) {
		if log != nil {
			w.log = log
		}
	}
}

// Report summarizes a walk.
type Report struct {
	Routed   int      // SetPath calls made
	Unrouted []string // leaf paths nothing consumed, sorted
}

type walker struct {
	router   Router
	defaults *schema.Table
	log      *zap.Logger
	visited  map[string]bool
	unrouted map[string]bool
	routed   int
}

// Walk streams every element below the sub-root element named subRoot into
// r: first each routed attribute under path/@name, then the element under
// path/$ when r routes that, else under path. Sibling elements are visited
// in key order, repeated elements in document order. Paths are relative to
// the sub-root ("./control_variables/title").
func Walk(doc *Document, subRoot string, r Router, opts ...Option) (*Report, error) {
	content, err := doc.Select("$." + subRoot)
	if err != nil {
		return nil, err
	}

	w := &walker{
		router:   r,
		log:      zap.NewNop(),
		visited:  make(map[string]bool),
		unrouted: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := w.children(".", content, false); err != nil {
		return nil, err
	}

	if w.defaults != nil {
		if err := w.synthesize("./" + subRoot); err != nil {
			return nil, err
		}
	}

	report := &Report{Routed: w.routed, Unrouted: common.SortedKeys(w.unrouted)}

	for _, path := range report.Unrouted {
		w.log.Debug("path not routed", zap.String("path", path))
	}

	return report, nil
}

func (w *walker) children(path string, content map[string]any, covered bool) error {
	// Decoded documents keep no sibling order, so siblings go in key order.
	// When two paths bind an encoder to the same accumulator, the one later
	// in key order wins; templates bind such paths to the same encoder.
	for _, tag := range common.SortedKeys(content) {
		if strings.HasPrefix(tag, "@") || tag == utils.TextKey {
			continue
		}

		childPath := path + "/" + tag

		for _, item := range elements(content[tag]) {
			if err := w.element(childPath, tag, item, covered); err != nil {
				return err
			}
		}
	}

	return nil
}

// elements splits repeated elements; a list of scalars is one value.
func elements(v any) []any {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return []any{v}
	}

	for _, item := range list {
		if _, isMap := item.(map[string]any); !isMap {
			return []any{v}
		}
	}

	return list
}

func (w *walker) element(path, tag string, value any, covered bool) error {
	w.visited[path] = true

	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}

	content, isMap := value.(map[string]any)
	node := map[string]any{tag: value}

	var attrs []string
	if isMap {
		for _, key := range common.SortedKeys(content) {
			if strings.HasPrefix(key, "@") {
				attrs = append(attrs, key)
			}
		}
	}

	routed, err := w.route(path, tag, node, attrs)
	if err != nil {
		return err
	}

	if !isMap {
		if !routed && !covered {
			w.unrouted[path] = true
		}

		return nil
	}

	return w.children(path, content, covered || routed)
}

// route delivers one element and reports whether the element itself was
// routed.
func (w *walker) route(path, tag string, node map[string]any, attrs []string) (bool, error) {
	for _, attr := range attrs {
		attrPath := path + "/" + attr
		if !w.router.Contains(attrPath) {
			continue
		}

		if err := w.set(attrPath, tag, node); err != nil {
			return false, err
		}
	}

	target := path + "/" + utils.TextKey
	if !w.router.Contains(target) {
		target = path
	}

	if !w.router.Contains(target) {
		return false, nil
	}

	return true, w.set(target, tag, node)
}

func (w *walker) set(path, tag string, node map[string]any) error {
	w.routed++

	if err := w.router.SetPath(path, tag, node); err != nil {
		return fmt.Errorf("routing %s: %w", path, err)
	}

	return nil
}

// synthesize routes table defaults for elements the document lacks. prefix
// is the sub-root path in table form ("./input").
func (w *walker) synthesize(prefix string) error {
	for _, d := range w.defaults.Defaults(prefix) {
		path := "." + strings.TrimPrefix(d.Path, prefix)
		if w.visited[path] {
			continue
		}

		var (
			value any
			attrs []string
		)

		if d.Complex {
			content := make(map[string]any, len(d.Attributes)+1)
			for _, key := range common.SortedKeys(d.Attributes) {
				content[key] = d.Attributes[key]
				attrs = append(attrs, key)
			}

			if d.HasValue {
				content[utils.TextKey] = d.Value
			}

			value = content
		} else {
			value = d.Value
		}

		if _, err := w.route(path, d.Tag, map[string]any{d.Tag: value}, attrs); err != nil {
			return err
		}
	}

	return nil
}

// PathSet is a router that can list its paths.
type PathSet interface {
	Contains(path string) bool
	Paths() []string
}

// Unrouted is a document path no template entry consumes.
type Unrouted struct {
	Path        string
	Suggestions []string
}

type dryRouter struct {
	PathSet
}

func (dryRouter) SetPath(string, string, map[string]any) error {
	return nil
}

// Unmapped walks doc without routing anything and returns the leaf paths
// paths does not consume, each with the closest known paths.
func Unmapped(doc *Document, subRoot string, paths PathSet) ([]Unrouted, error) {
	report, err := Walk(doc, subRoot, dryRouter{paths})
	if err != nil {
		return nil, err
	}

	known := paths.Paths()
	out := make([]Unrouted, 0, len(report.Unrouted))

	for _, path := range report.Unrouted {
		out = append(out, Unrouted{Path: path, Suggestions: match.Suggest(path, known, 3)})
	}

	return out, nil
}
