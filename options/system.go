package options

import (
	"fmt"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/utils"
)

// SystemNspin derives nspin from the lsda and noncolin flags.
func SystemNspin(args *engine.Args) ([]string, error) {
	if !args.Require("parameter "+args.Name, "lsda") {
		return nil, nil
	}

	if lsda, _ := utils.Bool(args.Values["lsda"]); lsda {
		return []string{fmt.Sprintf(" %s=2", args.Name)}, nil
	}

	if !args.Require("parameter "+args.Name, "noncolin") {
		return nil, nil
	}

	if noncolin, _ := utils.Bool(args.Values["noncolin"]); noncolin {
		return []string{fmt.Sprintf(" %s=4", args.Name)}, nil
	}

	return []string{fmt.Sprintf(" %s=1", args.Name)}, nil
}

// IbravZero declares a free lattice: cell vectors are always written out.
func IbravZero(args *engine.Args) ([]string, error) {
	return []string{fmt.Sprintf(" %s=0", args.Name)}, nil
}

// NebSystemNat takes the atom count of the first reaction-path image.
func NebSystemNat(args *engine.Args) ([]string, error) {
	images := utils.Maps(args.Values["atomic_structure"])
	if len(images) == 0 {
		args.Logger().Error("No atomic_structure element found")
		return nil, nil
	}

	nat, ok := images[0]["@nat"]
	if !ok {
		args.Logger().Error("error reading nat value from atomic_structure")
		return nil, nil
	}

	return []string{fmt.Sprintf(" %s = %s", args.Name, utils.Str(nat))}, nil
}

// Ha2Ry converts an energy from Hartree to Rydberg.
func Ha2Ry(args *engine.Args) ([]string, error) {
	related, _ := args.Related()

	v, ok := utils.Float(utils.Text(related))
	if !ok {
		args.Logger().Error("not a number", zap.String("parameter", args.Name), zap.Any("value", related))
		return nil, nil
	}

	return []string{fmt.Sprintf(" %s = %12.8f", args.Name, v*2)}, nil
}

// Amass renders one mass per atom type, indexed by the atom attribute.
func Amass(args *engine.Args) ([]string, error) {
	var lines []string

	for _, node := range utils.Maps(args.Values["amass"]) {
		value, ok := utils.Float(node[utils.TextKey])
		if !ok {
			args.Logger().Error("amass: incorrect datatype", zap.Any("value", node[utils.TextKey]))
			continue
		}

		lines = append(lines, fmt.Sprintf(" %s(%s)=%7.3f", args.Name, utils.Str(node["@atom"]), value))
	}

	return lines, nil
}
