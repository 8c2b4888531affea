package mapping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEncoders() *Registry[struct{}] {
	r := NewRegistry[struct{}]()
	for _, n := range []string{"atomic_species", "starting_magnetization", "k_points"} {
		r.Add(n, struct{}{})
	}

	return r
}

func compileYAML(t *testing.T, src string) (*Maps, error) {
	t.Helper()

	tpl, err := Parse([]byte(src))
	require.NoError(t, err)

	return Compile(tpl, testEncoders(), nil)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	maps, err := compileYAML(t, sampleTemplate)
	require.NoError(t, err)

	assert.Equal(t, "sample", maps.Name)

	target, ok := maps.Invariant.Get("./control_variables/title")
	require.True(t, ok)
	assert.Equal(t, Target{Group: "CONTROL", Name: "title"}, target)

	path, ok := maps.Invariant.Key(Target{Group: "SYSTEM", Name: "ntyp"})
	require.True(t, ok)
	assert.Equal(t, "./atomic_species/@ntyp", path)
	assert.Equal(t, 3, maps.Invariant.Len())

	ds := maps.Variant["./atomic_species/$"]
	require.Len(t, ds, 2)
	assert.Equal(t, Descriptor{Target: Target{Group: "ATOMIC_SPECIES"}, Encoder: "atomic_species"}, ds[0])
	assert.Equal(t, "starting_magnetization", ds[1].Encoder)

	assert.True(t, maps.Contains("./k_points_IBZ"))
	assert.False(t, maps.Contains("./k_points_IBZ/nk"))
	assert.Equal(t, []string{"ATOMIC_SPECIES", "CONTROL", "K_POINTS", "SYSTEM"}, maps.Groups())
	assert.Equal(t, []string{
		"./atomic_species/$",
		"./atomic_species/@ntyp",
		"./control_variables/prefix",
		"./control_variables/title",
		"./k_points_IBZ",
	}, maps.Paths())
}

func TestCompile_FanOutWithInvariant(t *testing.T) {
	t.Parallel()

	maps, err := compileYAML(t, `
map:
  species:
    - SYSTEM[ntyp]
    - target: ATOMIC_SPECIES
      encoder: atomic_species
`)
	require.NoError(t, err)

	target, ok := maps.Invariant.Get("./species")
	require.True(t, ok)
	assert.Equal(t, "ntyp", target.Name)
	assert.Len(t, maps.Variant["./species"], 1)
}

func TestCompile_StructuralErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		code string
	}{
		{
			name: "same path as invariant and variant position",
			yaml: `
map:
  a/b: CONTROL[x]
  a:
    b:
      target: CARD
`,
			code: "duplicate_path",
		},
		{
			name: "two paths share one invariant target",
			yaml: `
map:
  a: CONTROL[x]
  b: CONTROL[x]
`,
			code: "duplicate_target",
		},
		{
			name: "variant target also invariant",
			yaml: `
map:
  a: SYSTEM[nspin]
  b:
    target: SYSTEM[nspin]
`,
			code: "variant_overlaps_invariant",
		},
		{
			name: "malformed target",
			yaml: `
map:
  a: lr_input[max_seconds
`,
			code: "malformed_target",
		},
		{
			name: "bare invariant",
			yaml: `
map:
  a: CONTROL
`,
			code: "bare_invariant",
		},
		{
			name: "unknown encoder",
			yaml: `
map:
  a:
    target: K_POINTS
    encoder: k_point
`,
			code: "unknown_encoder",
		},
		{
			name: "unknown decoder",
			yaml: `
map:
  a:
    target: K_POINTS
    encoder: k_points
    decoder: lowr
`,
			code: "unknown_decoder",
		},
		{
			name: "empty fan-out",
			yaml: `
map:
  a: []
`,
			code: "empty_fanout",
		},
		{
			name: "two invariants in one fan-out",
			yaml: `
map:
  a:
    - CONTROL[x]
    - CONTROL[y]
`,
			code: "ambiguous_fanout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			maps, err := compileYAML(t, tt.yaml)
			require.Error(t, err)
			assert.Nil(t, maps)
			assert.True(t, errors.Is(err, ErrStructural))

			var se *StructuralError
			require.ErrorAs(t, err, &se)
			assert.Contains(t, se.Codes(), tt.code)
		})
	}
}

func TestCompile_UnknownEncoderSuggests(t *testing.T) {
	t.Parallel()

	_, err := compileYAML(t, `
name: pw
map:
  a:
    target: K_POINTS
    encoder: k_point
`)

	var se *StructuralError
	require.ErrorAs(t, err, &se)
	require.Len(t, se.Diagnostics.Errors, 1)
	assert.Equal(t, []string{"k_points"}, se.Diagnostics.Errors[0].Suggestions)
	assert.Contains(t, err.Error(), `template "pw"`)
}

func TestCompile_CollectsAllProblems(t *testing.T) {
	t.Parallel()

	_, err := compileYAML(t, `
map:
  a: CONTROL
  b: "x y"
  c: []
`)

	var se *StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{"bare_invariant", "malformed_target", "empty_fanout"}, se.Codes())
}

func TestCompile_NilTemplate(t *testing.T) {
	t.Parallel()

	_, err := Compile(nil, nil, nil)
	require.ErrorIs(t, err, ErrStructural)
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	parent, kw := SplitPath("./a/b/@c")
	assert.Equal(t, "./a/b", parent)
	assert.Equal(t, "@c", kw)

	parent, kw = SplitPath("x")
	assert.Empty(t, parent)
	assert.Equal(t, "x", kw)
}

func TestCompile_Decoder(t *testing.T) {
	t.Parallel()

	tpl, err := Parse([]byte(`
map:
  a:
    target: K_POINTS
    encoder: k_points
    decoder: lowr
`))
	require.NoError(t, err)

	decoders := NewRegistry[struct{}]()
	decoders.Add("lower", struct{}{})

	_, err = Compile(tpl, testEncoders(), decoders)
	var se *StructuralError
	require.ErrorAs(t, err, &se)
	require.Len(t, se.Diagnostics.Errors, 1)
	assert.Equal(t, "unknown_decoder", se.Diagnostics.Errors[0].Code)
	assert.Equal(t, []string{"lower"}, se.Diagnostics.Errors[0].Suggestions)

	tpl.Map.Set("a", &Variant{Target: "K_POINTS", Encoder: "k_points", Decoder: "lower"})

	maps, err := Compile(tpl, testEncoders(), decoders)
	require.NoError(t, err)
	assert.Equal(t, []Descriptor{{Target: Target{Group: "K_POINTS"}, Encoder: "k_points", Decoder: "lower"}}, maps.Variant["./a"])
}
