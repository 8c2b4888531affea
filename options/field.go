package options

import (
	"fmt"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/utils"
)

type fieldParam struct {
	active FieldModel
	source string // rendered value; empty for a model switch
}

var fieldParams = map[string]fieldParam{
	"tefield":  {active: FieldSawtooth},
	"lelfield": {active: FieldHomogeneous},
	"lberry":   {active: FieldBerryPhase},
	"eamp":     {active: FieldSawtooth, source: "electric_field_amplitude"},
	"efield":   {active: FieldHomogeneous, source: "electric_field_amplitude"},
	"edir":     {active: FieldSawtooth, source: "electric_field_direction"},
	"gdir":     {active: FieldHomogeneous | FieldBerryPhase, source: "electric_field_direction"},
}

// ElectricField renders the parameters that depend on the electric field
// model. Switches are always written; values only when their model is active.
func ElectricField(args *engine.Args) ([]string, error) {
	param, ok := fieldParams[args.Name]
	if !ok {
		args.Logger().Error("no electric field parameter with this name", zap.String("parameter", args.Name))
		return nil, nil
	}

	if !args.Require("parameter "+args.Name, "electric_potential") {
		return nil, nil
	}

	potential, _ := utils.String(args.Values["electric_potential"])
	model := ParseFieldModel(potential)

	if param.source == "" {
		return []string{fmt.Sprintf(" %s=%s", args.Name, utils.FortranBool(model.Has(param.active)))}, nil
	}

	if !model.Has(param.active) {
		return nil, nil
	}

	if !args.Require("parameter "+args.Name, param.source) {
		return nil, nil
	}

	return []string{fmt.Sprintf(" %s=%s", args.Name, utils.Str(args.Values[param.source]))}, nil
}

// CellDofree derives cell_dofree from the cell constraint flags. At most one
// may be set; a conflict is logged and the cell is left fully free.
func CellDofree(args *engine.Args) ([]string, error) {
	var (
		set    CellFreedom
		dofree = "all"
	)

	for _, cf := range cellFreedoms {
		v, ok := args.Values[cf.key]
		if !ok {
			continue
		}

		if b, isBool := utils.Bool(v); isBool {
			if !b {
				continue
			}
		} else if !utils.Truthy(v) {
			continue
		}

		if set == CellNone {
			dofree = cf.dofree
			if cf.flag == CellDoFree {
				dofree, _ = utils.String(utils.Str(v))
			}
		}

		set |= cf.flag
	}

	if set.Count() > 1 {
		args.Logger().Error("only one of fix_volume, fix_area, fix_xy, isotropic, cell_do_free can be true")
		dofree = "all"
	}

	return []string{fmt.Sprintf(" %s = %s", args.Name, utils.Quote(dofree))}, nil
}
