package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/battgen/battgen/pkg/pack"
)

// EnvPrefix marks environment variables that override descriptor fields,
// e.g. BATTGEN_CELL_Q=5.1.
const EnvPrefix = "BATTGEN_CELL_"

// Format is a descriptor encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", pkgerrors.Errorf("unsupported descriptor format %q", ext)
	}
}

func (f Format) parser() (koanf.Parser, error) {
	switch f {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, pkgerrors.Errorf("unsupported descriptor format %q", f)
	}
}

// Load reads a descriptor file. Environment overrides are applied on top of
// the file contents.
func Load(path string) (pack.Module, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return pack.Module{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return pack.Module{}, pkgerrors.Wrapf(err, "failed to open file %s", path)
	}

	m, err := load(file.Provider(path), format, true)
	if err != nil {
		return pack.Module{}, pkgerrors.Wrapf(err, "failed to load input file %s", path)
	}

	logrus.WithField("path", path).Debug("descriptor loaded")
	return m, nil
}

// Parse decodes a descriptor held in memory. Environment overrides do not
// apply.
func Parse(b []byte, format Format) (pack.Module, error) {
	m, err := load(bytesProvider(b), format, false)
	if err != nil {
		return pack.Module{}, pkgerrors.Wrap(err, "failed to parse descriptor")
	}
	return m, nil
}

func load(p koanf.Provider, format Format, withEnv bool) (pack.Module, error) {
	parser, err := format.parser()
	if err != nil {
		return pack.Module{}, err
	}

	k := koanf.New(".")
	if err := k.Load(p, parser); err != nil {
		return pack.Module{}, err
	}
	if withEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		}), nil); err != nil {
			return pack.Module{}, err
		}
	}

	var missing []string
	for _, key := range Keys {
		if !k.Exists(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return pack.Module{}, pkgerrors.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	var raw Raw
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return pack.Module{}, err
	}

	m, err := raw.Module()
	if err != nil {
		return pack.Module{}, err
	}

	for _, w := range Check(m) {
		logrus.WithError(w).Warn("implausible descriptor value")
	}
	return m, nil
}

// bytesProvider serves an in-memory document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("bytes provider does not support Read")
}
