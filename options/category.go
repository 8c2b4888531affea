package options

// FieldModel is the way an external electric field is applied.
type FieldModel int

const (
	FieldSawtooth    FieldModel = 1 << iota // sawtooth potential along edir
	FieldHomogeneous                        // homogeneous finite field along gdir
	FieldBerryPhase                         // Berry phase polarization along gdir

	FieldAll  = (1 << iota) - 1 // all models combined
	FieldNone = 0               // no field
)

var fieldModels = map[string]FieldModel{
	"sawtooth_potential": FieldSawtooth,
	"homogenous_field":   FieldHomogeneous,
	"Berry_Phase":        FieldBerryPhase,
}

// ParseFieldModel returns the model named by an electric_potential value.
func ParseFieldModel(s string) FieldModel {
	return fieldModels[s]
}

// Has reports whether m shares a model with o.
func (m FieldModel) Has(o FieldModel) bool {
	return m&o != 0
}

// CellFreedom is a constraint on the cell degrees of freedom during relaxation.
type CellFreedom int

const (
	CellFixVolume CellFreedom = 1 << iota // shape only
	CellFixArea                           // 2D shape
	CellFixXY                             // 2D xy
	CellIsotropic                         // volume only
	CellDoFree                            // explicit cell_dofree keyword

	CellAll  = (1 << iota) - 1 // all constraints combined
	CellNone = 0               // unconstrained
)

type cellFreedom struct {
	key    string
	flag   CellFreedom
	dofree string
}

// cellFreedoms lists the document flags in precedence order. CellDoFree
// carries its own keyword.
var cellFreedoms = []cellFreedom{
	{key: "fix_volume", flag: CellFixVolume, dofree: "shape"},
	{key: "fix_area", flag: CellFixArea, dofree: "2Dshape"},
	{key: "fix_xy", flag: CellFixXY, dofree: "2Dxy"},
	{key: "isotropic", flag: CellIsotropic, dofree: "volume"},
	{key: "cell_do_free", flag: CellDoFree},
}

// Count returns the number of constraints set in c.
func (c CellFreedom) Count() int {
	n := 0
	for _, cf := range cellFreedoms {
		if c&cf.flag != 0 {
			n++
		}
	}

	return n
}
