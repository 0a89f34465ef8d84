package pack

import (
	"math"

	"github.com/sirupsen/logrus"
)

// NewRecCell creates a prismatic cell. Voltages, cycle life and thermal
// properties are taken from the chemistry table.
func NewRecCell(l, w, h, mass, r, q float64, chem Chem) Module {
	m := newCell(chem, mass, r, q)
	m.Shape = ShapePrism
	m.Dims = [3]float64{l, w, h}
	return m
}

// NewCylCell creates a cylindrical cell from its diameter and length.
// v is ignored: the chemistry table supplies the voltage window.
func NewCylCell(diam, length, mass, r, v, q float64, chem Chem) Module {
	m := newCell(chem, mass, r, q)
	m.Shape = ShapeCylinder
	m.Dims = [3]float64{diam, length, 0}
	return m
}

func newCell(chem Chem, mass, r, q float64) Module {
	d := DefaultsFromChem(chem)
	return Module{
		InputType:            ModTypeCell,
		Chem:                 chem,
		Series:               1,
		Parallel:             1,
		Mass:                 mass,
		Termination:          TermAxial,
		VMin:                 d.VMin,
		VMax:                 d.VMax,
		VNom:                 d.VNom,
		Q:                    q,
		RNom:                 r,
		MaxCurrentContinuous: d.MaxRateC * q,
		SpecificHeat:         d.SpecificHeat,
		CycleLife:            d.CycleLife,
		TempMax:              d.TempMax,
		TempMin:              d.TempMin,
	}
}

// PackingEfficiency is the fraction of packed volume occupied by cells of
// the given shape.
func PackingEfficiency(s Shape) float64 {
	switch s {
	case ShapeCylinder:
		return 0.90
	case ShapePrism:
		return 0.98
	default:
		return 1.0
	}
}

// Volume returns the cell volume in cubic meters.
func (m Module) Volume() float64 {
	switch m.Shape {
	case ShapeCylinder:
		r := m.Dims[0] / 2
		return math.Pi * r * r * m.Dims[1]
	case ShapePrism:
		return m.Dims[0] * m.Dims[1] * m.Dims[2]
	default:
		return 0
	}
}

// MassKg returns the mass in kilograms.
func (m Module) MassKg() float64 {
	return m.Mass
}

// MinVolumePacked returns the volume taken once packing voids are included.
// It is never smaller than Volume.
func (m Module) MinVolumePacked() float64 {
	return m.Volume() / PackingEfficiency(m.Shape)
}

// MinVolumePacked sums the packed volume of every cell of every array.
func (b *Battery) MinVolumePacked() float64 {
	var vol float64
	for i, a := range b.Arrays {
		vp := a.Module.MinVolumePacked()
		cc := a.CellCount()
		logrus.WithFields(logrus.Fields{
			"array":        i,
			"packedVolume": vp,
			"cellCount":    cc,
		}).Trace("accumulating packed volume")
		vol += vp * float64(cc)
	}
	return vol
}

// MechanicalParams are the mechanical design requirements of the pack as a
// whole. Nothing consumes them yet.
type MechanicalParams struct {
	// linear and angular xyz
	PeakAccel [6]float64 `json:"peakAccel"`
}
