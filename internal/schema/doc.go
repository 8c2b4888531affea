// Package schema describes the element types and default values of a
// document format in a small YAML table.
//
// A table is keyed by element path relative to the document root element,
// written the way mapping templates write them:
//
//	name: pw
//	root: espresso
//	elements:
//	  ./input/control_variables/calculation:
//	    type: string
//	    default: "scf"
//	  ./input/bands/smearing:
//	    type: string
//	    attributes:
//	      degauss: {type: double, default: "0.0"}
//
// Element text is decoded by its declared type; text of undeclared elements
// is typed by inference (see Infer). Defaults are written as strings and
// decoded once when the table is parsed.
package schema
