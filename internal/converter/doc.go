// Package converter binds the pieces of a conversion together for each
// supported program: the embedded template and schema table, the declared
// namelists and cards, and the layout of the rendered text.
//
// Templates are compiled once per kind and shared. A Converter owns one
// engine and can convert many documents in sequence:
//
//	doc, err := document.ReadFile("scf.xml", "")
//	...
//	text, err := converter.Convert(doc, converter.DefaultOptions())
//
// The kind is detected from the document root unless Options.Kind names it.
package converter
