package converter

import (
	"fmt"
	"strings"

	"namelist-generator/internal/engine"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind names a target program.
type Kind int

const (
	KindAuto     Kind = iota // auto
	KindPW                   // pw
	KindNEB                  // neb
	KindPhonon               // phonon
	KindTD                   // td
	KindSpectrum             // spectrum
	KindXSpectra             // xspectra
)

// kindDef is everything a converter of one kind is built from.
type kindDef struct {
	root     string // document root element
	subRoot  string // element holding the input
	template string // embedded template file
	schema   string // embedded schema table
	groups   []engine.Group
	layout   engine.Layout
	defaults bool
}

var pwGroups = []engine.Group{
	engine.Namelist("CONTROL"),
	engine.Namelist("SYSTEM"),
	engine.Namelist("ELECTRONS"),
	engine.Namelist("IONS"),
	engine.Namelist("CELL"),
	engine.Namelist("FCP").AsOptional(),
	engine.Card("ATOMIC_SPECIES"),
	engine.Card("ATOMIC_POSITIONS"),
	engine.Card("K_POINTS"),
	engine.Card("CELL_PARAMETERS"),
	engine.Card("ATOMIC_FORCES"),
	engine.Card("CONSTRAINTS").AsOptional(),
	engine.Card("HUBBARD").AsOptional(),
}

var kindDefs = map[Kind]kindDef{
	KindPW: {
		root:     "espresso",
		subRoot:  "input",
		template: "pw.yaml",
		schema:   "pw.yaml",
		groups:   pwGroups,
		defaults: true,
	},
	KindNEB: {
		root:     "nebRun",
		subRoot:  "input",
		template: "neb.yaml",
		schema:   "neb.yaml",
		groups: []engine.Group{
			engine.Namelist("PATH"),
			engine.Namelist("CONTROL"),
			engine.Namelist("SYSTEM"),
			engine.Namelist("ELECTRONS"),
			engine.Namelist("IONS"),
			engine.Namelist("CELL"),
			engine.Namelist("FCP").AsOptional(),
			engine.Card("CLIMBING_IMAGES").AsOptional(),
			engine.Card("ATOMIC_SPECIES"),
			engine.Card("ATOMIC_POSITIONS"),
			engine.Card("K_POINTS"),
			engine.Card("CELL_PARAMETERS"),
			engine.Card("ATOMIC_FORCES"),
			engine.Card("HUBBARD").AsOptional(),
			engine.Card("CONSTRAINTS").AsOptional(),
		},
		layout: engine.Wrapper{
			Boundary: "CONTROL",
			Begin:    []string{"BEGIN", "BEGIN_PATH_INPUT"},
			Middle:   []string{"END_PATH_INPUT", "BEGIN_ENGINE_INPUT"},
			End:      []string{"END_ENGINE_INPUT", "END"},
		},
		defaults: true,
	},
	KindPhonon: {
		root:     "espressoph",
		subRoot:  "inputPH",
		template: "phonon.yaml",
		schema:   "phonon.yaml",
		groups: []engine.Group{
			engine.Namelist("INPUTPH"),
			engine.Card("qPointsSpecs"),
			engine.Card("ph_nat_todo_card").AsOptional(),
		},
	},
	KindTD: {
		root:     "tddfpt",
		subRoot:  "input",
		template: "td.yaml",
		schema:   "td.yaml",
		groups: []engine.Group{
			engine.Namelist("cache"),
			engine.Namelist("lr_input"),
			engine.Namelist("lr_control"),
			engine.Namelist("lr_dav"),
			engine.Namelist("lr_post"),
		},
		layout: engine.Selector{
			Discriminator: "cache",
			Leading:       []string{"lr_input"},
			Choices: map[string]string{
				"lanczos":  "lr_control",
				"eels":     "lr_control",
				"davidson": "lr_dav",
			},
			Trailing: []string{"lr_post"},
		},
		defaults: true,
	},
	KindSpectrum: {
		root:     "spectrumDoc",
		subRoot:  "spectrumIn",
		template: "spectrum.yaml",
		schema:   "spectrum.yaml",
		groups:   []engine.Group{engine.Namelist("lr_input")},
		defaults: true,
	},
	KindXSpectra: {
		root:     "xspectra",
		subRoot:  "input",
		template: "xspectra.yaml",
		schema:   "xspectra.yaml",
		groups: []engine.Group{
			engine.Namelist("input_xspectra"),
			engine.Namelist("plot"),
			engine.Namelist("pseudos"),
			engine.Namelist("cut_occ"),
			engine.Card("K_POINTS"),
		},
		defaults: true,
	},
}

// Kinds returns every concrete kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindPW, KindNEB, KindPhonon, KindTD, KindSpectrum, KindXSpectra}
}

// ParseKind resolves a kind name such as "pw" or "auto".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == KindAuto.String() {
		return KindAuto, nil
	}

	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}

	return KindAuto, fmt.Errorf("unknown kind %q", s)
}

// DetectKind tells the kind of a document from its root element.
func DetectKind(root string) (Kind, error) {
	for _, k := range Kinds() {
		if kindDefs[k].root == root {
			return k, nil
		}
	}

	return KindAuto, fmt.Errorf("%w: %q", ErrUnknownRoot, root)
}

// SubRoot returns the element that holds the input of a kind.
func (k Kind) SubRoot() string {
	return kindDefs[k].subRoot
}

// Root returns the document root element of a kind.
func (k Kind) Root() string {
	return kindDefs[k].root
}
