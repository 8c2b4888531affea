package options

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/internal/mapping"
	"namelist-generator/utils"
)

const noHubbardLabel = "no Hubbard"

// speciesOf returns the species entries and their names in declaration order.
func speciesOf(args *engine.Args) ([]map[string]any, []string, bool) {
	raw, ok := utils.Lookup(args.Values, "atomic_species", "species")
	if !ok {
		args.Logger().Error("Missing required argument when building parameter",
			zap.String("parameter", args.Name), zap.String("missing", "atomic_species/species"))

		return nil, nil, false
	}

	species := utils.Maps(raw)
	names := make([]string, len(species))

	for i, sp := range species {
		names[i], _ = utils.String(utils.Str(sp["@name"]))
	}

	return species, names, true
}

// SpecieRelatedValues renders per-species parameters indexed by the species
// position in ATOMIC_SPECIES. Scalars give NAME(i) and are written only when
// positive; vectors give NAME(k,i), or NAME(k,spin,i) with a spin attribute,
// skipping negative components (and zero ones for Hubbard_J).
func SpecieRelatedValues(args *engine.Args) ([]string, error) {
	_, names, ok := speciesOf(args)
	if !ok {
		return nil, nil
	}

	related, _ := args.Related()

	var lines []string

	for _, v := range utils.Maps(related) {
		if label, _ := utils.String(v["@label"]); label == noHubbardLabel {
			continue
		}

		specie, _ := utils.String(utils.Str(v["@specie"]))

		idx := slices.Index(names, specie) + 1
		if idx == 0 {
			return nil, mapping.NewDocumentError("unknown specie %q in tag %q", specie, args.Name)
		}

		values, isList := v[utils.TextKey].([]any)
		if !isList {
			if f, ok := utils.Float(v[utils.TextKey]); ok && f > 0 {
				lines = append(lines, fmt.Sprintf(" %s(%d)=%s", args.Name, idx, utils.Str(v[utils.TextKey])))
			}

			continue
		}

		spin, hasSpin := v["@spin"]
		hasSpin = hasSpin && utils.Truthy(spin)

		for k, item := range values {
			f, ok := utils.Float(item)
			if !ok || f < 0 || (args.Name == "Hubbard_J" && f == 0) {
				continue
			}

			if hasSpin {
				lines = append(lines, fmt.Sprintf(" %s(%d,%s,%d)=%s", args.Name, k+1, utils.Str(spin), idx, utils.Str(item)))
			} else {
				lines = append(lines, fmt.Sprintf(" %s(%d,%d)=%s", args.Name, k+1, idx, utils.Str(item)))
			}
		}
	}

	return lines, nil
}

// StartingMagnetization renders one entry per species, 0.0 when unset.
func StartingMagnetization(args *engine.Args) ([]string, error) {
	species, _, ok := speciesOf(args)
	if !ok {
		return nil, nil
	}

	lines := make([]string, 0, len(species))

	for k, sp := range species {
		value, ok := sp["starting_magnetization"]
		if !ok {
			value = 0.0
		}

		lines = append(lines, fmt.Sprintf(" %s(%d)=%s", args.Name, k+1, utils.Str(utils.Text(value))))
	}

	return lines, nil
}

// LdaPlusUFlag switches on DFT+U when any manifold has a positive U.
func LdaPlusUFlag(args *engine.Args) ([]string, error) {
	related, _ := args.Related()

	for _, v := range utils.Maps(related) {
		if label, _ := utils.String(v["@label"]); label == noHubbardLabel {
			continue
		}

		if f, ok := utils.Float(v[utils.TextKey]); ok && f > 0 {
			return []string{fmt.Sprintf(" %s = .true.", args.Name)}, nil
		}
	}

	return nil, nil
}
