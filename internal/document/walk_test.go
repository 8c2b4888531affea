package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelist-generator/internal/common"
	"namelist-generator/internal/schema"
)

type call struct {
	path string
	tag  string
	node map[string]any
}

type recorder struct {
	routes map[string]bool
	calls  []call
	fail   string
}

func newRecorder(paths ...string) *recorder {
	r := &recorder{routes: make(map[string]bool)}
	for _, p := range paths {
		r.routes[p] = true
	}

	return r
}

func (r *recorder) Contains(path string) bool {
	return r.routes[path]
}

func (r *recorder) Paths() []string {
	return common.SortedKeys(r.routes)
}

func (r *recorder) SetPath(path, tag string, node map[string]any) error {
	if path == r.fail {
		return errors.New("rejected")
	}

	r.calls = append(r.calls, call{path: path, tag: tag, node: node})

	return nil
}

func (r *recorder) paths() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.path
	}

	return out
}

func TestWalk(t *testing.T) {
	t.Parallel()

	r := newRecorder(
		"./control_variables/title",
		"./control_variables/nstep",
		"./atomic_species/@ntyp",
		"./atomic_species/$",
		"./k_points_IBZ",
		"./free_positions/$",
	)

	report, err := Walk(decodedSample(t), "input", r)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"./atomic_species/@ntyp",
		"./atomic_species/$",
		"./control_variables/nstep",
		"./control_variables/title",
		"./free_positions/$",
		"./k_points_IBZ",
	}, r.paths())

	assert.Equal(t, 6, report.Routed)
	assert.Equal(t, []string{"./control_variables/calculation", "./control_variables/forces"}, report.Unrouted)

	assert.Equal(t, "atomic_species", r.calls[0].tag)
	assert.Equal(t, r.calls[0].node, r.calls[1].node)
	assert.Equal(t, map[string]any{"nstep": 50}, r.calls[2].node)
	assert.Equal(t, map[string]any{"title": "Water"}, r.calls[3].node)
}

func TestWalk_RepeatedElements(t *testing.T) {
	t.Parallel()

	doc := &Document{Data: map[string]any{
		"input": map[string]any{
			"species": []any{
				map[string]any{"@name": "O", "mass": 16.0},
				map[string]any{"@name": "H", "mass": 1.0},
			},
			"free_positions": []any{1, 1, 0},
			"title":          "  padded  ",
		},
	}}

	r := newRecorder("./species/@name", "./species/mass", "./free_positions", "./title")

	report, err := Walk(doc, "input", r)
	require.NoError(t, err)
	assert.Empty(t, report.Unrouted)

	assert.Equal(t, []string{
		"./free_positions",
		"./species/@name",
		"./species/mass",
		"./species/@name",
		"./species/mass",
		"./title",
	}, r.paths())

	assert.Equal(t, map[string]any{"free_positions": []any{1, 1, 0}}, r.calls[0].node)
	assert.Equal(t, map[string]any{"mass": 1.0}, r.calls[4].node)
	assert.Equal(t, map[string]any{"title": "padded"}, r.calls[5].node)
}

func TestWalk_SiblingsInKeyOrder(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		`<run><input><cell_control>x</cell_control><atomic_structure>y</atomic_structure></input></run>`,
		`<run><input><atomic_structure>y</atomic_structure><cell_control>x</cell_control></input></run>`,
	} {
		doc, err := Parse([]byte(text), FormatXML)
		require.NoError(t, err)

		r := newRecorder("./atomic_structure", "./cell_control")

		_, err = Walk(doc, "input", r)
		require.NoError(t, err)
		assert.Equal(t, []string{"./atomic_structure", "./cell_control"}, r.paths(), text)
	}
}

func TestWalk_Defaults(t *testing.T) {
	t.Parallel()

	table, err := schema.Parse([]byte(`
elements:
  ./input/control_variables/calculation: {type: string, default: "scf"}
  ./input/control_variables/title: {type: string, default: "none"}
  ./input/bands/smearing:
    type: string
    default: "gaussian"
    attributes:
      degauss: {type: double, default: "0.0"}
  ./inputPH/tr2_ph: {type: double, default: "1e-12"}
`))
	require.NoError(t, err)

	r := newRecorder(
		"./control_variables/calculation",
		"./control_variables/title",
		"./bands/smearing/$",
		"./bands/smearing/@degauss",
	)

	doc := &Document{Data: map[string]any{
		"input": map[string]any{"control_variables": map[string]any{"title": "given"}},
	}}

	_, err = Walk(doc, "input", r, WithDefaults(table))
	require.NoError(t, err)

	smearing := map[string]any{"smearing": map[string]any{"@degauss": 0.0, "$": "gaussian"}}

	assert.Equal(t, []call{
		{path: "./control_variables/title", tag: "title", node: map[string]any{"title": "given"}},
		{path: "./bands/smearing/@degauss", tag: "smearing", node: smearing},
		{path: "./bands/smearing/$", tag: "smearing", node: smearing},
		{path: "./control_variables/calculation", tag: "calculation", node: map[string]any{"calculation": "scf"}},
	}, r.calls)

	r = newRecorder("./control_variables/calculation")
	_, err = Walk(doc, "input", r)
	require.NoError(t, err)
	assert.Empty(t, r.calls)
}

func TestWalk_Errors(t *testing.T) {
	t.Parallel()

	_, err := Walk(decodedSample(t), "inputPH", newRecorder())
	require.Error(t, err)

	r := newRecorder("./control_variables/title")
	r.fail = "./control_variables/title"

	_, err = Walk(decodedSample(t), "input", r)
	require.ErrorContains(t, err, "routing ./control_variables/title: rejected")
}

func TestUnmapped(t *testing.T) {
	t.Parallel()

	doc := &Document{Data: map[string]any{
		"input": map[string]any{
			"control_variables": map[string]any{
				"calculatoin": "scf",
			},
			"zzz": 1,
		},
	}}

	r := newRecorder("./control_variables/calculation", "./system/ecutwfc")

	unmapped, err := Unmapped(doc, "input", r)
	require.NoError(t, err)

	assert.Equal(t, []Unrouted{
		{Path: "./control_variables/calculatoin", Suggestions: []string{"./control_variables/calculation"}},
		{Path: "./zzz", Suggestions: []string{}},
	}, unmapped)
	assert.Empty(t, r.calls)
}
