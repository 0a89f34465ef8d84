package pack

// ChemDefaults holds the per-chemistry assumptions used when a cell is built
// from a handful of parameters instead of a full descriptor.
//
// TempMax and TempMin carry the values of the original table, which are
// transposed (TempMax < TempMin). They are kept as-is.
type ChemDefaults struct {
	VMin         float64 `json:"vmin"`
	VNom         float64 `json:"vnom"`
	VMax         float64 `json:"vmax"`
	CycleLife    float64 `json:"cycleLife"`
	MaxRateC     float64 `json:"maxRateC"`
	SpecificHeat float64 `json:"specificHeat"`
	TempMax      float64 `json:"tempMax"`
	TempMin      float64 `json:"tempMin"`
}

const (
	// assume 2C maximum (dis)charge rate for every chemistry
	defaultMaxRateC     = 2.0
	defaultSpecificHeat = 800.0
	defaultTempMax      = -20.0
	defaultTempMin      = 60.0
)

var chemistries = []Chem{ChemNMC, ChemLFP, ChemLMO, ChemNCA, ChemLTO, ChemNiMH, ChemOther}

// Chemistries returns every known chemistry tag.
func Chemistries() []Chem {
	out := make([]Chem, len(chemistries))
	copy(out, chemistries)
	return out
}

// DefaultsFromChem looks up the voltage window and cycle life of a chemistry.
// ChemOther is all zero.
func DefaultsFromChem(c Chem) ChemDefaults {
	var vmin, vnom, vmax, cycleLife float64
	switch c {
	case ChemNMC:
		vmin, vnom, vmax, cycleLife = 3.0, 3.7, 4.2, 700
	case ChemNCA:
		vmin, vnom, vmax, cycleLife = 3.0, 3.7, 4.3, 1000
	case ChemLFP:
		vmin, vnom, vmax, cycleLife = 3.0, 3.2, 3.6, 2000
	case ChemLMO:
		vmin, vnom, vmax, cycleLife = 3.2, 3.8, 4.2, 700
	case ChemLTO:
		vmin, vnom, vmax, cycleLife = 1.8, 2.3, 2.8, 5000
	case ChemNiMH:
		vmin, vnom, vmax, cycleLife = 1.0, 1.2, 1.3, 1000
	}

	return ChemDefaults{
		VMin:         vmin,
		VNom:         vnom,
		VMax:         vmax,
		CycleLife:    cycleLife,
		MaxRateC:     defaultMaxRateC,
		SpecificHeat: defaultSpecificHeat,
		TempMax:      defaultTempMax,
		TempMin:      defaultTempMin,
	}
}
