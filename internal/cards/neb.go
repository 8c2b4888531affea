package cards

import (
	"strings"

	"go.uber.org/zap"

	"namelist-generator/internal/engine"
	"namelist-generator/utils"
)

const manualClimbing = "manual"

// ClimbingImages renders the card header and the indices of the climbing
// images when the climbing scheme is manual. Any other scheme renders no
// card at all, not even an empty line.
func ClimbingImages(args *engine.Args) ([]string, error) {
	scheme, _ := utils.String(args.Values["climbingImage"])
	if !strings.EqualFold(scheme, manualClimbing) {
		return nil, nil
	}

	indices, ok := utils.Ints(utils.Text(args.Values["climbingImageIndex"]))
	if !ok || len(indices) == 0 {
		args.Logger().Error("Missing required arguments when building CLIMBING_IMAGES card!",
			zap.String("missing", "climbingImageIndex"))

		return nil, nil
	}

	parts := make([]string, len(indices))
	for i, n := range indices {
		parts[i] = utils.Str(n)
	}

	return []string{args.Name, " " + strings.Join(parts, ", ")}, nil
}

// NebImagesPositions renders the positions of every reaction-path image.
// The first image is authoritative: its atom count must match its declared
// nat, the constraint flags and every other image. Any inconsistency is
// logged once and nothing is rendered.
func NebImagesPositions(args *engine.Args) ([]string, error) {
	images := utils.Maps(args.Values["atomic_structure"])
	if len(images) < 2 {
		args.Logger().Error("at least the atomic structures for first and last image should be provided",
			zap.Int("images", len(images)))

		return nil, nil
	}

	flags := freeFlags(args.Values["free_positions"])

	lines := []string{"BEGIN_POSITIONS ", "FIRST_IMAGE "}
	firstNat := 0

	for pos, image := range images {
		positions, unit, _ := positionsOf(image)
		atoms, _ := atomsOf(positions)

		if pos == 0 {
			firstNat = len(atoms)

			declared, _ := utils.Int(image["@nat"])

			switch {
			case firstNat == 0:
				args.Logger().Error("no atomic coordinates provided for first image")
				return nil, nil
			case firstNat != declared:
				args.Logger().Error("nat provided in first image differs from number of atoms in atomic_positions",
					zap.Int("nat", declared), zap.Int("atoms", firstNat))

				return nil, nil
			case flags != nil && len(flags) != 3*firstNat:
				args.Logger().Error("ATOMIC_POSITIONS: incorrect number of position constraints!",
					zap.Int("constraints", len(flags)), zap.Int("atoms", firstNat))

				return nil, nil
			}
		} else {
			if len(atoms) != firstNat {
				args.Logger().Error("found images with differing number of atoms",
					zap.Int("image", pos+1), zap.Int("atoms", len(atoms)), zap.Int("expected", firstNat))

				return nil, nil
			}

			if pos < len(images)-1 {
				lines = append(lines, "INTERMEDIATE_IMAGE ")
			} else {
				lines = append(lines, "LAST_IMAGE ")
			}
		}

		lines = append(lines, "ATOMIC_POSITIONS { "+unit+" }")

		for k, atom := range atoms {
			line, ok := atomLine(atom)
			if !ok {
				args.Logger().Error("ATOMIC_POSITIONS: incorrect datatype in positions!",
					zap.Int("image", pos+1), zap.Int("atom", k+1))

				return nil, nil
			}

			lines = append(lines, line+flagSuffix(flags, k))
		}
	}

	return append(lines, "END_POSITIONS "), nil
}

// NebCellParameters renders the cell of the first image.
func NebCellParameters(args *engine.Args) ([]string, error) {
	images := utils.Maps(args.Values["atomic_structure"])
	if len(images) == 0 {
		args.Logger().Error("No atomic_structure element found")
		return nil, nil
	}

	return cellLines(args.Name, images[0], "%12.8f%12.8f%12.8f"), nil
}
