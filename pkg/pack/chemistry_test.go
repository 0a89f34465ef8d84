package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsFromChem_VoltageOrdering(t *testing.T) {
	for _, c := range Chemistries() {
		d := DefaultsFromChem(c)
		if c == ChemOther {
			assert.Zero(t, d.VMin)
			assert.Zero(t, d.VNom)
			assert.Zero(t, d.VMax)
			assert.Zero(t, d.CycleLife)
			continue
		}
		assert.LessOrEqual(t, d.VMin, d.VNom, c.String())
		assert.LessOrEqual(t, d.VNom, d.VMax, c.String())
		assert.Positive(t, d.CycleLife, c.String())
	}
}

func TestDefaultsFromChem_Table(t *testing.T) {
	tests := []struct {
		chem      Chem
		vmin      float64
		vnom      float64
		vmax      float64
		cycleLife float64
	}{
		{ChemNMC, 3.0, 3.7, 4.2, 700},
		{ChemNCA, 3.0, 3.7, 4.3, 1000},
		{ChemLFP, 3.0, 3.2, 3.6, 2000},
		{ChemLMO, 3.2, 3.8, 4.2, 700},
		{ChemLTO, 1.8, 2.3, 2.8, 5000},
		{ChemNiMH, 1.0, 1.2, 1.3, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.chem.String(), func(t *testing.T) {
			d := DefaultsFromChem(tt.chem)
			assert.Equal(t, tt.vmin, d.VMin)
			assert.Equal(t, tt.vnom, d.VNom)
			assert.Equal(t, tt.vmax, d.VMax)
			assert.Equal(t, tt.cycleLife, d.CycleLife)
		})
	}
}

// The table ships with TempMax below TempMin. Pinned until someone decides
// to change the data.
func TestDefaultsFromChem_UniformAssumptions(t *testing.T) {
	for _, c := range Chemistries() {
		d := DefaultsFromChem(c)
		assert.Equal(t, 2.0, d.MaxRateC)
		assert.Equal(t, 800.0, d.SpecificHeat)
		assert.Equal(t, -20.0, d.TempMax)
		assert.Equal(t, 60.0, d.TempMin)
	}
}

func TestNewCylCell_ReproducesChemDefaults(t *testing.T) {
	for _, c := range Chemistries() {
		m := NewCylCell(0.021, 0.07, 0.07, 0.02, 0, 4.8, c)
		d := DefaultsFromChem(c)
		assert.Equal(t, d.VMin, m.VMin, c.String())
		assert.Equal(t, d.VNom, m.VNom, c.String())
		assert.Equal(t, d.VMax, m.VMax, c.String())
		assert.Equal(t, d.CycleLife, m.CycleLife, c.String())
		assert.Equal(t, d.SpecificHeat, m.SpecificHeat, c.String())
		assert.Equal(t, d.TempMax, m.TempMax, c.String())
		assert.Equal(t, d.TempMin, m.TempMin, c.String())
		assert.Equal(t, c, m.Chem)
	}
}

func TestChemistries_ReturnsCopy(t *testing.T) {
	c := Chemistries()
	c[0] = ChemOther
	assert.Equal(t, ChemNMC, Chemistries()[0])
	assert.Len(t, Chemistries(), 7)
}
