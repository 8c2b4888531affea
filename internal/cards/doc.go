// Package cards holds the encoders that render card blocks: species,
// positions, forces, cell, k-points, constraints, Hubbard, phonon q-points
// and reaction-path images.
//
// Encoders follow one convention. Missing required values are logged at
// error level and produce no lines; values that disagree with each other
// are logged and the affected lines are left out. Register adds all of them
// to an engine registry under the names templates refer to.
package cards
