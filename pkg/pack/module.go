package pack

const (
	MaxSeriesSub   = 25
	MaxParallelSub = 25

	// Per-cell voltage bounds used when proposing series sub-modules. They
	// come from the Nissan LEAF cell and are applied to every chemistry.
	subModuleCellVMin = 3.7
	subModuleCellVMax = 4.1
)

// Module is a single cell or a pre-built module. It is a plain value and is
// copied into the arrays that use it.
type Module struct {
	Shape       Shape      `json:"shape"`
	InputType   ModType    `json:"inputType"`
	Chem        Chem       `json:"chem"`
	Series      int        `json:"series"`
	Parallel    int        `json:"parallel"`
	Dims        [3]float64 `json:"dims"`
	Mass        float64    `json:"mass"`
	Termination Term       `json:"termination"`
	VMin        float64    `json:"vmin"`
	VMax        float64    `json:"vmax"`
	// nominal voltage
	VNom float64 `json:"vnom"`
	// capacity in Ah
	Q float64 `json:"q"`
	// nominal maximum DC resistance in ohms
	RNom float64 `json:"rnom"`
	// continuous maximum current in amps according to the manufacturer
	MaxCurrentContinuous float64 `json:"maxCurrentContinuous"`
	// J/(g*K), equal to kJ/(kg*K)
	SpecificHeat float64 `json:"specificHeat"`
	// to 80% SoH at 1C charge/discharge
	CycleLife float64 `json:"cycleLife"`
	TempMax   float64 `json:"tempMax"`
	TempMin   float64 `json:"tempMin"`
}

// Voltage returns the nominal voltage in V.
func (m Module) Voltage() float64 {
	return m.VNom
}

// Ah returns the nominal charge capacity.
func (m Module) Ah() float64 {
	return m.Q
}

// KWhNominal returns the nominal energy capacity.
func (m Module) KWhNominal() float64 {
	return m.Ah() * m.Voltage() / 1000
}

// CellCount returns the number of raw cells inside the module.
func (m Module) CellCount() int {
	return m.Series * m.Parallel
}

// IRDC returns the DC internal resistance at the given state of charge.
//
// The curve is an empirical guess, not fitted to measurements. soc is not
// range checked.
func (m Module) IRDC(soc float64) float64 {
	return 1.0 / (4.5 * (0.1*soc + 0.2)) * m.RNom
}

// SeriesGroup is a way of splitting the series string into equal groups.
type SeriesGroup struct {
	Count  int     `json:"count"`
	Series int     `json:"series"`
	VMin   float64 `json:"vmin"`
	VMax   float64 `json:"vmax"`
}

// ParallelGroup is a way of splitting the parallel strings into equal groups.
type ParallelGroup struct {
	Count    int `json:"count"`
	Parallel int `json:"parallel"`
}

// Submodules lists the regroupings returned by PossibleSubmodules.
type Submodules struct {
	Series   []SeriesGroup   `json:"series"`
	Parallel []ParallelGroup `json:"parallel"`
}

// PossibleSubmodules enumerates divisors of the series count below
// MaxSeriesSub and of the parallel count below MaxParallelSub. Series groups
// carry a voltage window computed from fixed 3.7 V / 4.1 V cell bounds,
// whatever the chemistry.
func (m Module) PossibleSubmodules() Submodules {
	var out Submodules
	for x := 1; x < MaxSeriesSub; x++ {
		if m.Series%x != 0 {
			continue
		}
		s := m.Series / x
		out.Series = append(out.Series, SeriesGroup{
			Count:  x,
			Series: s,
			VMin:   float64(s) * subModuleCellVMin,
			VMax:   float64(s) * subModuleCellVMax,
		})
	}
	for x := 1; x < MaxParallelSub; x++ {
		if m.Parallel%x != 0 {
			continue
		}
		out.Parallel = append(out.Parallel, ParallelGroup{
			Count:    x,
			Parallel: m.Parallel / x,
		})
	}
	return out
}
