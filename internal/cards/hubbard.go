package cards

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/utils"
)

// HartreeToEV converts Hubbard energies from the document unit to the card unit.
const HartreeToEV = 27.211386245988

const (
	noHubbardLabel    = "no Hubbard"
	defaultProjection = "atomic"
)

// Hubbard renders the HUBBARD card from the dftU element: U and J0 per
// manifold, and J with its second and third components (B for d shells, E2
// and E3 for f shells). Manifolds labelled "no Hubbard" and non-positive
// values are skipped. Without any entry nothing is rendered.
func Hubbard(args *engine.Args) ([]string, error) {
	dftU, ok := utils.Map(args.Values["dftU"])
	if !ok {
		args.Logger().Error("Missing required arguments when building HUBBARD card!",
			zap.String("missing", "dftU"))

		return nil, nil
	}

	var body []string

	for _, kind := range []struct{ key, param string }{{"Hubbard_U", "U"}, {"Hubbard_J0", "J0"}} {
		for _, v := range utils.Maps(dftU[kind.key]) {
			manifold, ok := manifoldOf(v)
			if !ok {
				continue
			}

			if f, ok := utils.Float(v[utils.TextKey]); ok && f > 0 {
				body = append(body, fmt.Sprintf("%s %s %s", kind.param, manifold, utils.FormatFloat(f*HartreeToEV)))
			}
		}
	}

	for _, v := range utils.Maps(dftU["Hubbard_J"]) {
		manifold, ok := manifoldOf(v)
		if !ok {
			continue
		}

		values, ok := utils.Floats(v[utils.TextKey])
		if !ok {
			args.Logger().Error("HUBBARD: incorrect datatype in Hubbard_J!", zap.String("manifold", manifold))
			continue
		}

		names := []string{"J", "B"}
		if strings.HasSuffix(manifold, "f") {
			names = []string{"J", "E2", "E3"}
		}

		for i, name := range names {
			if i < len(values) && values[i] > 0 {
				body = append(body, fmt.Sprintf("%s %s %s", name, manifold, utils.FormatFloat(values[i]*HartreeToEV)))
			}
		}
	}

	if len(body) == 0 {
		return nil, nil
	}

	projection := defaultProjection
	if p, ok := utils.String(dftU["U_projection_type"]); ok && p != "" {
		projection = p
	}

	return append([]string{fmt.Sprintf("%s {%s}", args.Name, projection)}, body...), nil
}

// manifoldOf returns "SPECIE-LABEL" for a Hubbard entry.
func manifoldOf(v map[string]any) (string, bool) {
	label, _ := utils.String(v["@label"])
	if label == noHubbardLabel {
		return "", false
	}

	specie, ok := utils.String(v["@specie"])
	if !ok || specie == "" {
		return "", false
	}

	if label == "" {
		return specie, true
	}

	return specie + "-" + label, true
}
