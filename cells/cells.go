// Package cells bundles reference descriptors for a few well known cells and
// modules. They back the default input and the demo.
package cells

import (
	"embed"
	"io/fs"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/pack"
)

// Default is the cell used when no input is given.
const Default = "m50t_21700"

// BundledPrefix can prefix a bundled name to skip the file system lookup.
const BundledPrefix = "bundled:"

//go:embed *.yaml
var files embed.FS

// Names lists the bundled descriptors, sorted.
func Names() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Open returns the raw YAML of a bundled descriptor.
func Open(name string) ([]byte, error) {
	name = strings.TrimPrefix(name, BundledPrefix)
	b, err := files.ReadFile(name + ".yaml")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "no bundled cell named %q", name)
	}
	return b, nil
}

// Load decodes a bundled descriptor.
func Load(name string) (pack.Module, error) {
	b, err := Open(name)
	if err != nil {
		return pack.Module{}, err
	}
	return descriptor.Parse(b, descriptor.FormatYAML)
}
