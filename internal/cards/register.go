package cards

import "namelist-generator/internal/engine"

// Register adds every card encoder to reg.
func Register(reg *engine.Registry) {
	reg.Add("atomic_species", AtomicSpecies)
	reg.Add("atomic_positions", AtomicPositions)
	reg.Add("atomic_forces", AtomicForces)
	reg.Add("cell_parameters", CellParameters)
	reg.Add("k_points", KPoints)
	reg.Add("xspectra_k_points", XSpectraKPoints)
	reg.Add("atomic_constraints", AtomicConstraints)
	reg.Add("hubbard", Hubbard)
	reg.Add("qpoints", QPoints)
	reg.Add("nat_todo", NatTodo)
	reg.Add("climbing_images", ClimbingImages)
	reg.Add("neb_images_positions", NebImagesPositions)
	reg.Add("neb_cell_parameters", NebCellParameters)
}
