package cards

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/utils"
)

// QPoints renders the q-point specification of a phonon run. A dispersion
// run needs none; without qplot a single vector (default Gamma) is written;
// otherwise a count followed by weighted points.
func QPoints(args *engine.Args) ([]string, error) {
	if ldisp, _ := utils.Bool(args.Values["ldisp"]); ldisp {
		return nil, nil
	}

	if qplot, _ := utils.Bool(args.Values["qplot"]); !qplot {
		xq := []float64{0, 0, 0}

		if raw, ok := args.Get("xq"); ok {
			v, ok := utils.Floats(utils.Text(raw))
			if !ok || len(v) < 3 {
				args.Logger().Error("qPointsSpecs: incorrect datatype in xq!")
				return nil, nil
			}

			xq = v
		}

		return []string{fmt.Sprintf("%6.4f  %8.4f  %8.4f", xq[0], xq[1], xq[2])}, nil
	}

	nqs := 1

	if raw, ok := args.Get("nqs"); ok {
		n, ok := utils.Int(utils.Text(raw))
		if !ok {
			args.Logger().Error("qPointsSpecs: incorrect datatype in nqs!")
			return nil, nil
		}

		nqs = n
	} else {
		args.Logger().Warn("qplot was set to true in input but no value for nqs was provided: assuming nqs=1")
	}

	points, ok := utils.Lookup(args.Values, "q_points_list", "q_point")
	if !ok {
		args.Logger().Error("Missing required arguments when building qPointsSpecs card!",
			zap.String("missing", "q_points_list/q_point"))

		return nil, nil
	}

	lines := []string{fmt.Sprintf("%4d", nqs)}
	for _, q := range utils.Maps(points) {
		lines = append(lines, fmt.Sprintf(" %s %s", utils.Str(utils.List(q[utils.TextKey])), utils.Str(q["@weight"])))
	}

	return lines, nil
}

// NatTodo renders the indices of the atoms to displace. The declared count
// must match the list.
func NatTodo(args *engine.Args) ([]string, error) {
	todo, ok := utils.Map(args.Values["nat_todo"])
	if !ok {
		args.Logger().Error("Missing required arguments when building nat_todo card!",
			zap.String("missing", "nat_todo"))

		return nil, nil
	}

	atoms := utils.List(todo["atom"])
	if len(atoms) == 1 {
		// a single text node may carry the whole list
		atoms = utils.List(atoms[0])
	}

	natom, ok := utils.Int(todo["@natom"])
	if !ok || natom != len(atoms) {
		args.Logger().Error("nat_todo: declared atom count differs from the list",
			zap.Any("natom", todo["@natom"]), zap.Int("atoms", len(atoms)))

		return nil, nil
	}

	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = utils.Str(a)
	}

	return []string{strings.Join(parts, " ")}, nil
}
