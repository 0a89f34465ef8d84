package pack

import (
	"gonum.org/v1/gonum/floats"
)

// Battery is an ordered list of module arrays connected in series. Arrays
// may use different modules, which allows series-hybrid packs. Parallel
// hybrids are not supported.
type Battery struct {
	Arrays []ModuleArray `json:"arrays"`

	// Whole-pack parameters. Unused for now.
	EParams *ElectricalParams `json:"electricalParams,omitempty"`
	MParams *MechanicalParams `json:"mechanicalParams,omitempty"`
	TParams *ThermalParams    `json:"thermalParams,omitempty"`
}

// NewBattery returns a battery without any module array.
func NewBattery() *Battery {
	return &Battery{}
}

// NewBatteryFrom returns a battery made of a single s x p array of m.
func NewBatteryFrom(m Module, s, p int) *Battery {
	return &Battery{
		Arrays: []ModuleArray{NewModuleArray(m, s, p)},
	}
}

// AddArray appends a series stage.
func (b *Battery) AddArray(a ModuleArray) {
	b.Arrays = append(b.Arrays, a)
}

// Topology returns the cell-level topology of the whole pack: series counts
// of the stages add up and the stage with the fewest parallel strings limits
// the pack. (5S3P)(5S2P) gives 10S2P. Cell voltages are not accounted for.
func (b *Battery) Topology() Topology {
	if len(b.Arrays) == 0 {
		return Topology{}
	}

	t := b.Arrays[0].Topology()
	for _, a := range b.Arrays[1:] {
		at := a.Topology()
		t.Series += at.Series
		if at.Parallel < t.Parallel {
			t.Parallel = at.Parallel
		}
	}
	return t
}

// Voltage returns the nominal pack voltage in V.
func (b *Battery) Voltage() float64 {
	v := make([]float64, len(b.Arrays))
	for i, a := range b.Arrays {
		v[i] = a.Voltage()
	}
	return floats.Sum(v)
}

// Ah returns the charge capacity of the weakest stage. An empty battery
// holds nothing.
func (b *Battery) Ah() float64 {
	if len(b.Arrays) == 0 {
		return 0
	}

	q := make([]float64, len(b.Arrays))
	for i, a := range b.Arrays {
		q[i] = a.Ah()
	}
	return floats.Min(q)
}

// KWhNominal returns the minimum accessible energy of the pack.
func (b *Battery) KWhNominal() float64 {
	return b.Ah() * b.Voltage() / 1000
}

// ModuleCount returns how many modules of the first array's topology fit in
// the pack topology.
func (b *Battery) ModuleCount() int {
	if len(b.Arrays) == 0 {
		return 0
	}

	t := b.Topology()
	first := b.Arrays[0].Topology()
	if first.Series == 0 || first.Parallel == 0 {
		return 0
	}
	return (t.Series / first.Series) * (t.Parallel / first.Parallel)
}

// CellCount returns the number of cells implied by the pack topology.
func (b *Battery) CellCount() int {
	return b.Topology().Cells()
}

// IRDC returns the DC resistance of the pack at the given state of charge.
func (b *Battery) IRDC(soc float64) float64 {
	var r float64
	for _, a := range b.Arrays {
		r += a.IRDC(soc)
	}
	return r
}

// ElectricalParams are the electrical parameters of the pack as a whole.
type ElectricalParams struct {
	// Peak input or output current in A. Most packs can deliver more than
	// their rated current at some cost to cycle life.
	PeakCurrent float64 `json:"peakCurrent"`
	// state of health
	SoH float64 `json:"soh"`
}
