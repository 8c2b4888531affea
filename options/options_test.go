package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"namelist-generator/internal/engine"
	"namelist-generator/internal/mapping"
)

func newArgs(name, tag string, values map[string]any) (*engine.Args, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return &engine.Args{Name: name, Tag: tag, Values: values, Log: zap.New(core)}, logs
}

func errorCount(logs *observer.ObservedLogs) int {
	return logs.FilterLevelExact(zapcore.ErrorLevel).Len()
}

func atomicSpecies() map[string]any {
	return map[string]any{
		"@ntyp": 2,
		"species": []any{
			map[string]any{"@name": "Fe", "mass": 55.845, "pseudo_file": "Fe.UPF", "starting_magnetization": 0.5},
			map[string]any{"@name": "O", "mass": 15.999, "pseudo_file": "O.UPF"},
		},
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := engine.NewRegistry()
	Register(reg)

	for _, name := range []string{
		"specie_related_values", "starting_magnetization", "lda_plus_u_flag", "system_nspin",
		"ibrav_zero", "neb_system_nat", "ha2ry", "amass", "electric_field", "cell_dofree",
		"boolean_flag", "td_what", "xspectra_component",
	} {
		assert.True(t, reg.Has(name), name)
	}
}

func TestSpecieRelatedValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		param   string
		related any
		want    []string
	}{
		{
			name:  "scalar per species",
			param: "Hubbard_alpha",
			related: []any{
				map[string]any{"@specie": "O", "$": 0.3},
				map[string]any{"@specie": "Fe", "$": 0.0},
			},
			want: []string{" Hubbard_alpha(2)=0.3"},
		},
		{
			name:    "vector with spin skips negative",
			param:   "starting_ns_eigenvalue",
			related: map[string]any{"@specie": "Fe", "@spin": 1, "$": []any{-1.0, 0.5, -1.0}},
			want:    []string{" starting_ns_eigenvalue(2,1,1)=0.5"},
		},
		{
			name:    "Hubbard_J skips zero",
			param:   "Hubbard_J",
			related: map[string]any{"@specie": "O", "$": []any{0.0, 0.2}},
			want:    []string{" Hubbard_J(2,2)=0.2"},
		},
		{
			name:    "no Hubbard label",
			param:   "Hubbard_beta",
			related: map[string]any{"@specie": "Xx", "@label": "no Hubbard", "$": 1.0},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args, logs := newArgs(tt.param, tt.param, map[string]any{
				"atomic_species": atomicSpecies(),
				tt.param:         tt.related,
			})

			lines, err := SpecieRelatedValues(args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
			assert.Zero(t, errorCount(logs))
		})
	}
}

func TestSpecieRelatedValues_UnknownSpecie(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("london_c6", "london_c6", map[string]any{
		"atomic_species": atomicSpecies(),
		"london_c6":      map[string]any{"@specie": "Zn", "$": 1.0},
	})

	lines, err := SpecieRelatedValues(args)
	assert.Nil(t, lines)

	var docErr *mapping.DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Contains(t, docErr.Msg, `"Zn"`)
}

func TestSpecieRelatedValues_MissingSpecies(t *testing.T) {
	t.Parallel()

	args, logs := newArgs("Hubbard_alpha", "Hubbard_alpha", map[string]any{
		"Hubbard_alpha": map[string]any{"@specie": "Fe", "$": 1.0},
	})

	lines, err := SpecieRelatedValues(args)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 1, errorCount(logs))
}

func TestStartingMagnetization(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("starting_magnetization", "atomic_species", map[string]any{"atomic_species": atomicSpecies()})

	lines, err := StartingMagnetization(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" starting_magnetization(1)=0.5", " starting_magnetization(2)=0.0"}, lines)
}

func TestLdaPlusUFlag(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("lda_plus_u", "Hubbard_U", map[string]any{
		"Hubbard_U": []any{
			map[string]any{"@specie": "O", "@label": "no Hubbard", "$": 1.0},
			map[string]any{"@specie": "Fe", "@label": "3d", "$": 0.2},
		},
	})

	lines, err := LdaPlusUFlag(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" lda_plus_u = .true."}, lines)

	args, _ = newArgs("lda_plus_u", "Hubbard_U", map[string]any{
		"Hubbard_U": map[string]any{"@specie": "Fe", "@label": "3d", "$": 0.0},
	})

	lines, err = LdaPlusUFlag(args)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSystemNspin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values map[string]any
		want   []string
		errors int
	}{
		{name: "lsda", values: map[string]any{"lsda": true}, want: []string{" nspin=2"}},
		{name: "noncolin", values: map[string]any{"lsda": false, "noncolin": true}, want: []string{" nspin=4"}},
		{name: "unpolarized", values: map[string]any{"lsda": false, "noncolin": false}, want: []string{" nspin=1"}},
		{name: "missing lsda", values: map[string]any{"noncolin": true}, errors: 1},
		{name: "missing noncolin", values: map[string]any{"lsda": false}, errors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args, logs := newArgs("nspin", "lsda", tt.values)

			lines, err := SystemNspin(args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
			assert.Equal(t, tt.errors, errorCount(logs))
		})
	}
}

func TestStructureDerived(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("ibrav", "atomic_structure", nil)
	lines, err := IbravZero(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" ibrav=0"}, lines)

	args, _ = newArgs("nat", "atomic_structure", map[string]any{
		"atomic_structure": []any{
			map[string]any{"@nat": 3},
			map[string]any{"@nat": 3},
		},
	})
	lines, err = NebSystemNat(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" nat = 3"}, lines)

	args, logs := newArgs("nat", "atomic_structure", map[string]any{})
	lines, err = NebSystemNat(args)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 1, errorCount(logs))
}

func TestHa2Ry(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("ecutfock", "ecutfock", map[string]any{"ecutfock": 0.5})

	lines, err := Ha2Ry(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" ecutfock =   1.00000000"}, lines)
}

func TestAmass(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("amass", "amass", map[string]any{
		"amass": []any{
			map[string]any{"@atom": 1, "$": 12.0},
			map[string]any{"@atom": 2, "$": 1.008},
		},
	})

	lines, err := Amass(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" amass(1)= 12.000", " amass(2)=  1.008"}, lines)
}

func TestElectricField(t *testing.T) {
	t.Parallel()

	field := func(potential string) map[string]any {
		return map[string]any{
			"electric_potential":       potential,
			"electric_field_amplitude": 0.001,
			"electric_field_direction": 3,
		}
	}

	tests := []struct {
		param     string
		potential string
		want      []string
	}{
		{"tefield", "sawtooth_potential", []string{" tefield=.true."}},
		{"tefield", "Berry_Phase", []string{" tefield=.false."}},
		{"lelfield", "homogenous_field", []string{" lelfield=.true."}},
		{"lberry", "Berry_Phase", []string{" lberry=.true."}},
		{"lberry", "sawtooth_potential", []string{" lberry=.false."}},
		{"eamp", "sawtooth_potential", []string{" eamp=0.001"}},
		{"eamp", "homogenous_field", nil},
		{"efield", "homogenous_field", []string{" efield=0.001"}},
		{"efield", "Berry_Phase", nil},
		{"edir", "sawtooth_potential", []string{" edir=3"}},
		{"edir", "Berry_Phase", nil},
		{"gdir", "Berry_Phase", []string{" gdir=3"}},
		{"gdir", "homogenous_field", []string{" gdir=3"}},
		{"gdir", "sawtooth_potential", nil},
	}

	for _, tt := range tests {
		t.Run(tt.param+"/"+tt.potential, func(t *testing.T) {
			t.Parallel()

			args, logs := newArgs(tt.param, "electric_potential", field(tt.potential))

			lines, err := ElectricField(args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
			assert.Zero(t, errorCount(logs))
		})
	}
}

func TestElectricField_Missing(t *testing.T) {
	t.Parallel()

	args, logs := newArgs("eamp", "electric_field_amplitude", map[string]any{"electric_field_amplitude": 0.1})
	lines, err := ElectricField(args)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 1, errorCount(logs))

	args, logs = newArgs("eamp", "electric_potential", map[string]any{"electric_potential": "sawtooth_potential"})
	lines, err = ElectricField(args)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 1, errorCount(logs))
}

func TestFieldModel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FieldSawtooth, ParseFieldModel("sawtooth_potential"))
	assert.Equal(t, FieldModel(FieldNone), ParseFieldModel("none"))
	assert.True(t, FieldModel(FieldAll).Has(FieldBerryPhase))
	assert.False(t, FieldSawtooth.Has(FieldHomogeneous|FieldBerryPhase))
}

func TestCellDofree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values map[string]any
		want   string
		errors int
	}{
		{name: "fix volume", values: map[string]any{"fix_volume": true}, want: "'shape'"},
		{name: "false flag ignored", values: map[string]any{"fix_area": false, "isotropic": true}, want: "'volume'"},
		{name: "textual flag", values: map[string]any{"fix_xy": "true"}, want: "'2Dxy'"},
		{name: "explicit keyword", values: map[string]any{"cell_do_free": "ibrav"}, want: "'ibrav'"},
		{name: "none set", values: map[string]any{"fix_volume": false}, want: "'all'"},
		{name: "conflict", values: map[string]any{"fix_volume": true, "fix_area": true}, want: "'all'", errors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args, logs := newArgs("cell_dofree", "fix_volume", tt.values)

			lines, err := CellDofree(args)
			require.NoError(t, err)
			assert.Equal(t, []string{" cell_dofree = " + tt.want}, lines)
			assert.Equal(t, tt.errors, errorCount(logs))
		})
	}
}

func TestCellFreedomCount(t *testing.T) {
	t.Parallel()

	assert.Zero(t, CellFreedom(CellNone).Count())
	assert.Equal(t, 2, (CellFixArea | CellDoFree).Count())
	assert.Equal(t, 5, CellFreedom(CellAll).Count())
}

func TestBooleanFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value any
		want  string
	}{
		{true, ".true."},
		{false, ".false."},
		{"TRUE", ".true."},
		{" 1 ", ".true."},
		{"yes", ".false."},
		{1, ".false."},
	}

	for _, tt := range tests {
		args, _ := newArgs("lrpa", "lrpa", map[string]any{"lrpa": tt.value})

		lines, err := BooleanFlag(args)
		require.NoError(t, err)
		assert.Equal(t, []string{" lrpa = " + tt.want}, lines, "%v", tt.value)
	}
}

func TestTdWhat(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("what", "whatTD", map[string]any{"whatTD": "davidson"})

	lines, err := TdWhat(args)
	require.NoError(t, err)
	assert.Equal(t, []string{"davidson"}, lines)

	args, logs := newArgs("what", "whatTD", map[string]any{})
	lines, err = TdWhat(args)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 1, errorCount(logs))
}

func TestXSpectraComponent(t *testing.T) {
	t.Parallel()

	args, _ := newArgs("xkvec2", "xkvec2", map[string]any{"xkvec2": 1})
	lines, err := XSpectraComponent(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" xkvec(2)=1.0"}, lines)

	args, _ = newArgs("r_paw0", "r_paw0", map[string]any{"r_paw0": "1.5"})
	lines, err = XSpectraComponent(args)
	require.NoError(t, err)
	assert.Equal(t, []string{" r_paw(0)=1.5"}, lines)

	args, logs := newArgs("xepsilon1", "xepsilon1", map[string]any{"xepsilon1": "n/a"})
	lines, err = XSpectraComponent(args)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, 1, errorCount(logs))
}

func TestDecoders(t *testing.T) {
	t.Parallel()

	reg := engine.NewDecoderRegistry()
	RegisterDecoders(reg)
	assert.Equal(t, []string{"floats", "list", "lower", "upper"}, reg.Names())

	tests := []struct {
		name    string
		decoder engine.Decoder
		in      any
		want    any
		wantErr bool
	}{
		{name: "lower", decoder: Lower, in: " MANUAL ", want: "manual"},
		{name: "upper keeps attributes", decoder: Upper,
			in:   map[string]any{"@unit": "bohr", "$": "alat"},
			want: map[string]any{"@unit": "bohr", "$": "ALAT"}},
		{name: "upper of a number", decoder: Upper, in: 3, wantErr: true},
		{name: "text without text", decoder: Lower, in: map[string]any{"@unit": "bohr"}, wantErr: true},
		{name: "single value as list", decoder: AsList, in: 4, want: []any{4}},
		{name: "list stays", decoder: AsList, in: []any{1, 2}, want: []any{1, 2}},
		{name: "floats from text", decoder: FloatList, in: "1 2.5\n-3", want: []float64{1, 2.5, -3}},
		{name: "floats from list", decoder: FloatList, in: []any{1, "2"}, want: []float64{1, 2}},
		{name: "floats from garbage", decoder: FloatList, in: "1 x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.decoder(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecoders_DoNotMutateInput(t *testing.T) {
	t.Parallel()

	in := map[string]any{"@unit": "bohr", "$": "alat"}
	_, err := Upper(in)
	require.NoError(t, err)
	assert.Equal(t, "alat", in["$"])
}
