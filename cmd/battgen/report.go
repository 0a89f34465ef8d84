package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/battgen/battgen/pkg/pack"
)

var (
	green   = color.New(color.FgGreen).SprintFunc()
	blue    = color.New(color.FgBlue).SprintFunc()
	red     = color.New(color.FgRed).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

type reporter struct {
	w io.Writer
}

func newReporter(w io.Writer) *reporter {
	return &reporter{w: w}
}

func (r *reporter) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(r.w, format, a...)
}

func (r *reporter) mechanical(m pack.Module) {
	r.printf("Volume of cells in module: %v m3\n", m.Volume())
	r.printf("Volume with packing efficiency: %v m3\n", m.MinVolumePacked())
}

func (r *reporter) mass(m pack.Module) {
	r.printf("Module cell mass: %v kg\n", m.MassKg())
}

func (r *reporter) topology(m pack.Module) {
	r.printf("Module topology: %dS%dP\n", m.Series, m.Parallel)
}

func (r *reporter) electricalNominal(m pack.Module) {
	r.printf("Module nominal characteristics: %vV, %vAh, %vkWh\n", m.Voltage(), m.Ah(), m.KWhNominal())
}

func (r *reporter) overview(m pack.Module) {
	r.mechanical(m)
	r.electricalNominal(m)
	r.mass(m)
	r.topology(m)
}

// overviewEV prints the same figures as overview for now.
func (r *reporter) overviewEV(m pack.Module) {
	r.overview(m)
}

// verbose prints the module report for a -v count. Three or more repeats
// the level two report.
func (r *reporter) verbose(m pack.Module, level int) {
	switch {
	case level <= 0:
		r.electricalNominal(m)
	case level == 1:
		r.electricalNominal(m)
		r.overviewEV(m)
	default:
		times := 1
		if level >= 3 {
			times = 2
		}
		for i := 0; i < times; i++ {
			r.overview(m)
			r.overviewEV(m)
			r.mechanical(m)
			r.electricalNominal(m)
		}
	}
}

// pack arranges m as t and prints the module and the resulting battery.
func (r *reporter) pack(name string, m pack.Module, t pack.Topology, soc float64) {
	r.printf("%s %s %s\n", green("Generating pack from module given"), name, t)

	r.mechanical(m)
	r.mass(m)
	r.electricalNominal(m)
	r.topology(m)

	b := pack.NewBatteryFrom(m, t.Series, t.Parallel)
	r.battery(b, soc)
}

func (r *reporter) battery(b *pack.Battery, soc float64) {
	r.printf("%s %s\n", magenta("Battery minimum topology:"), b.Topology())
	r.printf("Note: this does not account for cell voltages.\n")
	r.printf("Pack voltage: %vV\n", b.Voltage())
	r.printf("Pack capacity: %vAh\n", b.Ah())
	r.printf("%s %v kWh\n", blue("Nominal pack capacity:"), b.KWhNominal())
	r.printf("%s %v m3\n", red("Pack volume:"), b.MinVolumePacked())
	r.printf("Pack DC resistance at %v SoC: %v ohm\n", soc, b.IRDC(soc))
}

// summary prints a battery evaluated elsewhere, such as by the daemon.
func (r *reporter) summary(s *pack.Summary) {
	for i, a := range s.Arrays {
		r.printf("%s %d: %s of %s modules\n", bold("Array"), i, a.Arrangement, a.Module.Topology)
		r.printf("  ModuleArray topology: %s\n", a.Topology)
		r.printf("  Array voltage: %vV, capacity: %vAh, %vkWh\n", a.Voltage, a.Ah, a.KWhNominal)
	}
	r.printf("%s %s\n", magenta("Battery minimum topology:"), s.Topology)
	r.printf("Note: this does not account for cell voltages.\n")
	r.printf("Pack voltage: %vV\n", s.Voltage)
	r.printf("Pack capacity: %vAh\n", s.Ah)
	r.printf("%s %v kWh\n", blue("Nominal pack capacity:"), s.KWhNominal)
	r.printf("%s %v m3\n", red("Pack volume:"), s.MinVolumePacked)
	r.printf("Pack DC resistance at %v SoC: %v ohm\n", s.SoC, s.IRDC)
	r.printf("Modules: %d, cells: %d\n", s.ModuleCount, s.CellCount)
}
