package cards

import (
	"fmt"
	"slices"

	"namelist-generator/internal/common"
	"namelist-generator/utils"
)

type positionKind struct {
	key  string
	unit string
}

var positionKinds = []positionKind{
	{key: "atomic_positions", unit: "bohr"},
	{key: "crystal_positions", unit: "crystal"},
	{key: "wyckoff_positions", unit: "crystal_sg"},
}

var latticeVectors = []string{"a1", "a2", "a3"}

// positionsOf finds the first kind of atomic positions present in item.
func positionsOf(item map[string]any) (positions map[string]any, unit string, found bool) {
	for _, pk := range positionKinds {
		if v, ok := item[pk.key]; ok {
			m, _ := utils.Map(v)
			return m, pk.unit, true
		}
	}

	return nil, "", false
}

// atomsOf returns the atoms of a positions element.
func atomsOf(positions map[string]any) ([]map[string]any, bool) {
	v, ok := positions["atom"]
	if !ok {
		return nil, false
	}

	return utils.Maps(v), true
}

// freeFlags returns the position constraint flags, nil when none are given.
func freeFlags(v any) []int {
	if !utils.Truthy(v) {
		return nil
	}

	flags, ok := utils.Ints(utils.Text(v))
	if !ok {
		return nil
	}

	return flags
}

// atomLine renders "NAME x y z" with the name padded to four columns.
func atomLine(atom map[string]any) (string, bool) {
	coords, ok := utils.Floats(atom[utils.TextKey])
	if !ok || len(coords) < 3 {
		return "", false
	}

	name, _ := utils.String(utils.Str(atom["@name"]))

	return fmt.Sprintf("%-4s %12.8f  %12.8f  %12.8f", name, coords[0], coords[1], coords[2]), true
}

// flagSuffix renders the constraint flags of atom k unless it moves freely.
func flagSuffix(flags []int, k int) string {
	triples, _ := common.Chunk(flags, 3)
	if k >= len(triples) {
		return ""
	}

	t := triples[k]
	if t[0]+t[1]+t[2] == 3 {
		return ""
	}

	return fmt.Sprintf(" %4d%4d%4d", t[0], t[1], t[2])
}

// cellLines renders the lattice vectors of a structure, nil without a cell.
func cellLines(name string, structure map[string]any, format string) []string {
	cell, ok := utils.Map(structure["cell"])
	if !ok || len(cell) == 0 {
		return nil
	}

	lines := []string{name + " bohr"}

	for _, key := range common.SortedKeys(cell) {
		if !slices.Contains(latticeVectors, key) {
			continue
		}

		v, ok := utils.Floats(cell[key])
		if !ok || len(v) < 3 {
			continue
		}

		lines = append(lines, fmt.Sprintf(format, v[0], v[1], v[2]))
	}

	return lines
}
