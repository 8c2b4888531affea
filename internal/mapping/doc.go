// Package mapping provides the template tree, YAML loading, target parsing,
// the encoder registry and the compiler that flattens a template into lookup
// tables.
//
// A template mirrors the decoded document: inner mappings follow element
// names, leaves say where a value goes in the generated input.
//
// # Template Overview
//
//	version: "1"
//	name: pw
//	map:
//	  control_variables:
//	    title: CONTROL[title]            # invariant: value rendered directly
//	    prefix: CONTROL[prefix]
//	  atomic_species:
//	    $:                               # fan-out: several targets for one path
//	      - target: ATOMIC_SPECIES
//	        encoder: atomic_species
//	      - SYSTEM[ntyp]
//	  atomic_structure:
//	    "@nat": SYSTEM[nat]
//	    cell:
//	      target: CELL_PARAMETERS        # variant: value accumulated for an encoder
//	      encoder: cell_parameters
//
// # Leaf Forms
//
//   - A string is an invariant target (Param).
//   - A mapping whose keys are a subset of {target, encoder, decoder} and that
//     carries target is a variant descriptor (Variant).
//   - A sequence is a fan-out (FanOut) of strings and descriptors. At most one
//     string may appear in it.
//   - Any other mapping is a nested branch.
//
// # Targets
//
// Targets are written GROUP[NAME], GROUP[NAME%SUB] or a bare GROUP, which
// addresses a whole card. Invariant targets always carry a name.
//
// # Compilation
//
// Compile walks the tree depth first building paths such as
// "./atomic_structure/@nat" and produces an invariant bijection
// (path -> target) plus a variant map (path -> descriptors). Structural
// problems are collected into diagnostic.Diagnostics and returned together as
// a *StructuralError.
package mapping
