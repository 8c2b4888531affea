package cards

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/utils"
)

// AtomicSpecies renders one " NAME MASS PSEUDO" line per species, in input order.
func AtomicSpecies(args *engine.Args) ([]string, error) {
	raw, ok := utils.Lookup(args.Values, "atomic_species", "species")
	if !ok {
		args.Logger().Error("Missing required arguments when building ATOMIC_SPECIES card!",
			zap.String("missing", "atomic_species/species"))

		return nil, nil
	}

	lines := []string{args.Name}

	for _, sp := range utils.Maps(raw) {
		name, hasName := sp["@name"]
		mass, hasMass := sp["mass"]
		pseudo, hasPseudo := sp["pseudo_file"]

		if !hasName || !hasMass || !hasPseudo {
			args.Logger().Error("incomplete species entry", zap.Any("species", sp))
			continue
		}

		lines = append(lines, fmt.Sprintf(" %s %s %s", utils.Str(name), utils.Str(mass), utils.Str(pseudo)))
	}

	return lines, nil
}

// AtomicPositions renders the positions of the structure with the unit
// implied by the kind of positions given, appending constraint flags for
// atoms that are not free along every axis.
func AtomicPositions(args *engine.Args) ([]string, error) {
	raw, ok := args.Get("atomic_structure")
	if !ok {
		args.Logger().Error("Missing required arguments when building ATOMIC_POSITIONS card!",
			zap.String("missing", "atomic_structure"))

		return nil, nil
	}

	structure, _ := utils.Map(raw)

	positions, unit, found := positionsOf(structure)
	atoms, hasAtoms := atomsOf(positions)

	if !found || !hasAtoms {
		args.Logger().Error("Cannot find any atoms for building ATOMIC_POSITIONS!")
		return nil, nil
	}

	flags := freeFlags(args.Values["free_positions"])
	if flags != nil && len(flags) != 3*len(atoms) {
		args.Logger().Error("ATOMIC_POSITIONS: incorrect number of position constraints!",
			zap.Int("constraints", len(flags)), zap.Int("atoms", len(atoms)))
	}

	lines := []string{args.Name + " " + unit}

	for k, atom := range atoms {
		line, ok := atomLine(atom)
		if !ok {
			args.Logger().Error("ATOMIC_POSITIONS: incorrect datatype in positions!", zap.Int("atom", k+1))
			continue
		}

		lines = append(lines, line+flagSuffix(flags, k))
	}

	return lines, nil
}

// AtomicForces renders external forces, one atom per line. A force vector
// that does not hold three components per atom is reported once; every
// atom with a complete triple is still written.
func AtomicForces(args *engine.Args) ([]string, error) {
	raw, ok := args.Get("external_atomic_forces")
	if !ok {
		args.Logger().Debug("Missing required arguments when building ATOMIC_FORCES card!")
		return nil, nil
	}

	forces, ok := utils.Floats(utils.Text(raw))
	if !ok {
		args.Logger().Error("ATOMIC_FORCES: incorrect datatype in forces!")
		return nil, nil
	}

	positions, _, _ := positionsOf(args.Values)
	atoms, _ := atomsOf(positions)

	if len(atoms) > 0 && len(forces) != 3*len(atoms) {
		args.Logger().Error("incorrect number of atomic forces",
			zap.Int("components", len(forces)), zap.Int("atoms", len(atoms)))
	}

	lines := []string{args.Name}

	for _, atom := range atoms {
		if len(forces) < 3 {
			break
		}

		name, _ := utils.String(utils.Str(atom["@name"]))
		lines = append(lines, fmt.Sprintf("%-3s  %14.8f %14.8f %14.8f", name, forces[0], forces[1], forces[2]))
		forces = forces[3:]
	}

	return lines, nil
}

// CellParameters renders the lattice vectors in bohr. A structure without a
// cell renders nothing; repeated structures are logged and render nothing.
func CellParameters(args *engine.Args) ([]string, error) {
	raw, ok := args.Get("atomic_structure")
	if !ok {
		args.Logger().Error("Missing required arguments when building CELL_PARAMETERS card!",
			zap.String("missing", "atomic_structure"))

		return nil, nil
	}

	structure, ok := utils.Map(raw)
	if !ok {
		args.Logger().Error("CELL_PARAMETERS: atomic_structure is not a single structure!",
			zap.String("type", fmt.Sprintf("%T", raw)))

		return nil, nil
	}

	return cellLines(args.Name, structure, "%12.8f %12.8f %12.8f "), nil
}

// KPoints renders the k-point sampling: "gamma" alone, an automatic
// Monkhorst-Pack grid, or an explicit list of weighted points.
func KPoints(args *engine.Args) ([]string, error) {
	if gamma, _ := utils.Bool(args.Values["gamma_only"]); gamma {
		return []string{args.Name + " gamma"}, nil
	}

	ibz, ok := utils.Map(args.Values["k_points_IBZ"])
	if !ok {
		args.Logger().Error("Missing required arguments when building K_POINTS card!",
			zap.String("missing", "k_points_IBZ"))

		return nil, nil
	}

	if mp, ok := utils.Map(ibz["monkhorst_pack"]); ok && len(mp) > 0 {
		grid, ok := gridLine(mp)
		if !ok {
			args.Logger().Error("K_POINTS: incomplete Monkhorst-Pack grid!", zap.Any("grid", mp))
			return nil, nil
		}

		return []string{args.Name + " automatic", grid}, nil
	}

	nk, hasNk := ibz["nk"]
	points, hasPoints := ibz["k_point"]

	if !hasNk || !hasPoints {
		args.Logger().Error("Missing required arguments when building K_POINTS card!",
			zap.Bool("nk", hasNk), zap.Bool("k_point", hasPoints))

		return nil, nil
	}

	lines := []string{args.Name, " " + utils.Str(nk)}

	for _, p := range utils.Maps(points) {
		lines = append(lines, fmt.Sprintf(" %s %s", utils.Str(utils.List(p[utils.TextKey])), utils.Str(p["@weight"])))
	}

	return lines, nil
}

// XSpectraKPoints renders the bare grid line XSpectra reads after its namelists.
func XSpectraKPoints(args *engine.Args) ([]string, error) {
	mp, ok := utils.Map(lookupValue(args.Values, "k_points_IBZ", "monkhorst_pack"))
	if !ok {
		args.Logger().Error("Missing required arguments when building K_POINTS card!",
			zap.String("missing", "k_points_IBZ/monkhorst_pack"))

		return nil, nil
	}

	grid, ok := gridLine(mp)
	if !ok {
		args.Logger().Error("K_POINTS: incomplete Monkhorst-Pack grid!", zap.Any("grid", mp))
		return nil, nil
	}

	return []string{grid}, nil
}

func gridLine(mp map[string]any) (string, bool) {
	parts := make([]string, 0, 6)

	for _, key := range []string{"@nk1", "@nk2", "@nk3", "@k1", "@k2", "@k3"} {
		v, ok := mp[key]
		if !ok {
			return "", false
		}

		parts = append(parts, utils.Str(v))
	}

	return " " + strings.Join(parts, " "), true
}

func lookupValue(v any, keys ...string) any {
	out, _ := utils.Lookup(v, keys...)
	return out
}

// AtomicConstraints renders the CONSTRAINTS card: the count and tolerance,
// then one "TYPE P1 P2 P3 P4 TARGET" line per constraint.
func AtomicConstraints(args *engine.Args) ([]string, error) {
	ac, _ := utils.Map(args.Values["atomic_constraints"])

	num, hasNum := ac["num_of_constraints"]
	tol, hasTol := ac["tolerance"]
	list, hasList := ac["atomic_constraint"]

	if !hasNum || !hasTol || !hasList {
		args.Logger().Error("Missing required arguments when building CONSTRAINTS card!")
		return nil, nil
	}

	lines := []string{args.Name, utils.Str(num) + " " + utils.Str(tol)}

	for _, c := range utils.Maps(list) {
		params := append([]any(nil), utils.List(c["constr_parms"])...)
		for len(params) < 4 {
			params = append(params, 0)
		}

		lines = append(lines, fmt.Sprintf("%s %s %s",
			utils.Str(c["constr_type"]), utils.Str(params), utils.Str(c["constr_target"])))
	}

	return lines, nil
}
