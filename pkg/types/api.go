// Package types holds the request and response bodies shared by the daemon
// and its clients.
package types

import (
	"fmt"

	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/pack"
)

// DefaultSoC is the state of charge used for resistance figures when the
// caller does not pick one.
const DefaultSoC = 0.5

// ArrayRequest is one series stage of a battery: a module descriptor and
// the "<series>S<parallel>P" arrangement of that module.
type ArrayRequest struct {
	Module   descriptor.Raw `json:"module"`
	Topology string         `json:"topology"`
}

// BatteryRequest asks the daemon to evaluate a battery.
type BatteryRequest struct {
	Arrays []ArrayRequest `json:"arrays"`
	SoC    *float64       `json:"soc,omitempty"`
}

// ChemistryEntry is one row of the chemistry defaults table.
type ChemistryEntry struct {
	Chem     pack.Chem         `json:"chem"`
	Defaults pack.ChemDefaults `json:"defaults"`
}

// StateOfCharge returns the requested state of charge or def.
func (r BatteryRequest) StateOfCharge(def float64) float64 {
	if r.SoC == nil {
		return def
	}
	return *r.SoC
}

// Battery builds the requested battery. Counts below 1 are rejected here
// since they turn results into infinities that JSON cannot carry.
func (r BatteryRequest) Battery() (*pack.Battery, error) {
	if len(r.Arrays) == 0 {
		return nil, fmt.Errorf("at least one module array is required")
	}

	b := pack.NewBattery()
	for i, a := range r.Arrays {
		m, err := a.Module.Module()
		if err != nil {
			return nil, fmt.Errorf("array %d: %w", i, err)
		}
		if err := checkCounts(m.Series, m.Parallel); err != nil {
			return nil, fmt.Errorf("array %d: module: %w", i, err)
		}

		t := pack.ParseTopology(a.Topology)
		if err := checkCounts(t.Series, t.Parallel); err != nil {
			return nil, fmt.Errorf("array %d: topology %q: %w", i, a.Topology, err)
		}

		b.AddArray(pack.NewModuleArray(m, t.Series, t.Parallel))
	}
	return b, nil
}

func checkCounts(series, parallel int) error {
	if series < 1 || parallel < 1 {
		return fmt.Errorf("series and parallel counts must be at least 1, got %dS%dP", series, parallel)
	}
	return nil
}

// Chemistries returns the whole chemistry defaults table.
func Chemistries() []ChemistryEntry {
	var out []ChemistryEntry
	for _, c := range pack.Chemistries() {
		out = append(out, ChemistryEntry{Chem: c, Defaults: pack.DefaultsFromChem(c)})
	}
	return out
}
