// Package pack models electric-vehicle battery packs built from cells or
// pre-assembled modules.
//
// A Module describes one cell (or one welded group of cells). A ModuleArray
// arranges copies of a single Module in a series x parallel grid, and a
// Battery connects one or more ModuleArrays in series. Every derived
// quantity is a pure function of the stored fields. Nothing in this package
// validates its inputs: zero counts and out-of-range state of charge follow
// IEEE floating point semantics.
//
// Units are MKS except charge capacity (Ah) and energy (kWh).
package pack
