package pack

import (
	"strings"
)

// Shape is the physical form factor of a cell.
type Shape int

const (
	ShapePrism Shape = iota
	ShapeCylinder
	ShapeOther
)

// Term is how the cell is terminated. Only consumed by mechanical tooling.
type Term int

const (
	TermEnd Term = iota
	TermAxial
	TermOther
)

// ModType tells a single electrochemical cell from a pre-built module.
// The distinction is informational and not enforced.
type ModType int

const (
	ModTypeCell ModType = iota
	ModTypeModule
)

// Chem is the cell chemistry. The set is small and arbitrary.
type Chem int

const (
	ChemNMC Chem = iota
	ChemLFP
	ChemLMO
	ChemNCA
	ChemLTO
	ChemNiMH
	ChemOther
)

// ParseShape maps a descriptor string to a Shape. Unknown values map to
// ShapeOther.
func ParseShape(s string) Shape {
	switch s {
	case "cylinder":
		return ShapeCylinder
	case "prism":
		return ShapePrism
	default:
		return ShapeOther
	}
}

// ParseModType maps a descriptor string to a ModType. Anything that is not
// "cell" is a module.
func ParseModType(s string) ModType {
	switch s {
	case "cell":
		return ModTypeCell
	case "module":
		return ModTypeModule
	default:
		return ModTypeModule
	}
}

// ParseTerm maps a descriptor string to a Term. Unknown values map to
// TermOther.
func ParseTerm(s string) Term {
	switch s {
	case "axial":
		return TermAxial
	case "end":
		return TermEnd
	default:
		return TermOther
	}
}

// ParseChem maps a chemistry name to a Chem, ignoring case. Unknown values
// map to ChemOther.
func ParseChem(s string) Chem {
	switch strings.ToLower(s) {
	case "nmc":
		return ChemNMC
	case "lfp", "lifepo4":
		return ChemLFP
	case "lmo":
		return ChemLMO
	case "nca":
		return ChemNCA
	case "lto":
		return ChemLTO
	case "nimh":
		return ChemNiMH
	default:
		return ChemOther
	}
}

func (s Shape) String() string {
	switch s {
	case ShapePrism:
		return "prism"
	case ShapeCylinder:
		return "cylinder"
	default:
		return "other"
	}
}

func (t Term) String() string {
	switch t {
	case TermEnd:
		return "end"
	case TermAxial:
		return "axial"
	default:
		return "other"
	}
}

func (m ModType) String() string {
	if m == ModTypeCell {
		return "cell"
	}
	return "module"
}

func (c Chem) String() string {
	switch c {
	case ChemNMC:
		return "NMC"
	case ChemLFP:
		return "LFP"
	case ChemLMO:
		return "LMO"
	case ChemNCA:
		return "NCA"
	case ChemLTO:
		return "LTO"
	case ChemNiMH:
		return "NiMH"
	default:
		return "Other"
	}
}

// Text marshalling keeps JSON readable. Unmarshalling is as lenient as the
// Parse* functions and never fails.

func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Shape) UnmarshalText(b []byte) error {
	*s = ParseShape(string(b))
	return nil
}

func (t Term) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Term) UnmarshalText(b []byte) error {
	*t = ParseTerm(string(b))
	return nil
}

func (m ModType) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *ModType) UnmarshalText(b []byte) error {
	*m = ParseModType(string(b))
	return nil
}

func (c Chem) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Chem) UnmarshalText(b []byte) error {
	*c = ParseChem(string(b))
	return nil
}
