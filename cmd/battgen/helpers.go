package main

import (
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/battgen/battgen/cells"
	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/pack"
)

// loadModule resolves ref as a descriptor file first, then as a bundled
// cell. "bundled:<name>" skips the file lookup.
func loadModule(ref string) (pack.Module, error) {
	if name, ok := strings.CutPrefix(ref, cells.BundledPrefix); ok {
		return cells.Load(name)
	}

	if _, err := os.Stat(ref); err != nil && slices.Contains(cells.Names(), ref) {
		logrus.WithField("cell", ref).Debug("no such file, using bundled cell")
		return cells.Load(ref)
	}

	return descriptor.Load(ref)
}

// parseTopology logs when a component fell back to 1 so that typos do not
// go unnoticed.
func parseTopology(s string) pack.Topology {
	t := pack.ParseTopology(s)
	if t.String() != s {
		logrus.WithFields(logrus.Fields{
			"provided": s,
			"parsed":   t.String(),
		}).Debug("topology normalized")
	}
	return t
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
