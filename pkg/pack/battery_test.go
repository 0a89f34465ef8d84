package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattery_PrismScenario(t *testing.T) {
	cell := prismCell()
	b := NewBatteryFrom(cell, 96, 1)

	assert.InDelta(t, 355.2, b.Voltage(), 1e-9)
	assert.InDelta(t, 50, b.Ah(), 1e-9)
	assert.InDelta(t, 17.76, b.KWhNominal(), 1e-9)
	assert.InDelta(t, 0.002, cell.Volume(), 1e-12)
	assert.Equal(t, Topology{Series: 96, Parallel: 1}, b.Topology())
	assert.Equal(t, 96, b.CellCount())
	assert.Equal(t, 1, b.ModuleCount())
}

func TestBattery_HeterogeneousTopology(t *testing.T) {
	b := NewBattery()
	b.AddArray(NewModuleArray(Module{Series: 1, Parallel: 1, VNom: 3.7, Q: 5}, 5, 3))
	b.AddArray(NewModuleArray(Module{Series: 1, Parallel: 1, VNom: 3.2, Q: 20}, 5, 2))

	assert.Equal(t, Topology{Series: 10, Parallel: 2}, b.Topology())
	assert.InDelta(t, 5*3.7+5*3.2, b.Voltage(), 1e-9)
	assert.InDelta(t, 15, b.Ah(), 1e-9)
	assert.InDelta(t, 15*(5*3.7+5*3.2)/1000, b.KWhNominal(), 1e-9)
}

func TestBattery_TopologyAggregation(t *testing.T) {
	arrays := []ModuleArray{
		NewModuleArray(Module{Series: 2, Parallel: 4}, 3, 2),
		NewModuleArray(Module{Series: 1, Parallel: 3}, 7, 3),
		NewModuleArray(Module{Series: 6, Parallel: 1}, 1, 12),
	}
	b := NewBattery()
	for _, a := range arrays {
		b.AddArray(a)
	}

	wantSeries := 0
	wantParallel := arrays[0].Parallel * arrays[0].Module.Parallel
	for _, a := range arrays {
		wantSeries += a.Series * a.Module.Series
		if p := a.Parallel * a.Module.Parallel; p < wantParallel {
			wantParallel = p
		}
	}

	got := b.Topology()
	assert.Equal(t, wantSeries, got.Series)
	assert.Equal(t, wantParallel, got.Parallel)
	assert.Equal(t, Topology{Series: 19, Parallel: 8}, got)
}

// The first array's own module parallel count takes part in the minimum,
// so a 2P module in a 1P array counts as 2 strings.
func TestBattery_TopologyUsesCellLevelParallel(t *testing.T) {
	b := NewBatteryFrom(Module{Series: 1, Parallel: 2}, 4, 1)
	b.AddArray(NewModuleArray(Module{Series: 1, Parallel: 1}, 4, 3))

	assert.Equal(t, Topology{Series: 8, Parallel: 2}, b.Topology())
}

func TestBattery_MinVolumePacked(t *testing.T) {
	cell := prismCell()
	cyl := NewCylCell(0.021, 0.07, 0.068, 0.02, 0, 5, ChemNMC)

	single := NewBatteryFrom(cell, 96, 1)
	// every array counts, the last one included
	assert.InDelta(t, 96*cell.MinVolumePacked(), single.MinVolumePacked(), 1e-12)
	assert.Positive(t, single.MinVolumePacked())

	two := NewBatteryFrom(cell, 10, 2)
	two.AddArray(NewModuleArray(cyl, 4, 3))
	want := 20*cell.MinVolumePacked() + 12*cyl.MinVolumePacked()
	assert.InDelta(t, want, two.MinVolumePacked(), 1e-12)

	assert.Zero(t, NewBattery().MinVolumePacked())
}

func TestBattery_Empty(t *testing.T) {
	b := NewBattery()

	assert.NotPanics(t, func() {
		assert.Equal(t, Topology{}, b.Topology())
		assert.Zero(t, b.Voltage())
		assert.Zero(t, b.Ah())
		assert.Zero(t, b.KWhNominal())
		assert.Zero(t, b.ModuleCount())
		assert.Zero(t, b.CellCount())
		assert.Zero(t, b.IRDC(0.5))
	})
}

func TestBattery_IRDCAndCounts(t *testing.T) {
	m := Module{Series: 1, Parallel: 1, RNom: 0.9}
	b := NewBatteryFrom(m, 8, 2)
	b.AddArray(NewModuleArray(m, 8, 2))

	assert.InDelta(t, 2*4*m.IRDC(0.2), b.IRDC(0.2), 1e-12)
	assert.Equal(t, Topology{Series: 16, Parallel: 2}, b.Topology())
	assert.Equal(t, 32, b.CellCount())
	// (16/8) * (2/2)
	assert.Equal(t, 2, b.ModuleCount())
}

func TestBattery_ParamsUnset(t *testing.T) {
	b := NewBatteryFrom(prismCell(), 1, 1)
	require.Len(t, b.Arrays, 1)
	assert.Nil(t, b.EParams)
	assert.Nil(t, b.MParams)
	assert.Nil(t, b.TParams)
}
