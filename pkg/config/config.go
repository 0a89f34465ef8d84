// Package config holds the daemon settings. They come from an optional
// YAML or JSON file, overridden by BATTGEN_DAEMON_* environment variables.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/battgen/battgen/pkg/types"
)

// EnvPrefix selects the environment variables read by Load.
const EnvPrefix = "BATTGEN_DAEMON_"

// Raw is the on-disk layout of the daemon config.
type Raw struct {
	UnixSocket         string  `json:"unixSocket"`
	Listen             string  `json:"listen"`
	AllowNonRootAccess bool    `json:"allowNonRootAccess"`
	DefaultSoC         float64 `json:"defaultSoC"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults(unixSocket string) Raw {
	return Raw{
		UnixSocket: unixSocket,
		DefaultSoC: types.DefaultSoC,
	}
}

// File is a daemon config that can be reloaded from its source.
type File struct {
	mu       sync.RWMutex
	c        Raw
	defaults Raw
	filepath string
}

// NewFile loads path on top of defaults. An empty path or a missing file
// leaves only defaults and environment overrides in effect.
func NewFile(path string, defaults Raw) (*File, error) {
	f := &File{
		filepath: path,
		defaults: defaults,
	}
	if err := f.Load(); err != nil {
		return nil, err
	}
	return f, nil
}

// Load rereads the file and the environment.
func (f *File) Load() error {
	k := koanf.New(".")

	if f.filepath != "" {
		parser, err := parserFor(f.filepath)
		if err != nil {
			return err
		}
		if err := k.Load(file.Provider(f.filepath), parser); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return pkgerrors.Wrapf(err, "failed to load config file %s", f.filepath)
			}
			logrus.WithField("path", f.filepath).Debug("config file not found, using defaults")
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKey(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to read environment")
	}

	c := f.defaults
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return pkgerrors.Wrap(err, "failed to unmarshal config")
	}
	if c.DefaultSoC < 0 || c.DefaultSoC > 1 {
		return pkgerrors.Errorf("defaultSoC must be between 0 and 1, got %v", c.DefaultSoC)
	}

	f.mu.Lock()
	f.c = c
	f.mu.Unlock()

	return nil
}

// envKey maps UNIX_SOCKET to unixSocket.
func envKey(s string) string {
	parts := strings.Split(strings.ToLower(s), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "soc" {
			parts[i] = "SoC"
			continue
		}
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, pkgerrors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

func (f *File) UnixSocket() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.c.UnixSocket
}

func (f *File) Listen() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.c.Listen
}

func (f *File) AllowNonRootAccess() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.c.AllowNonRootAccess
}

func (f *File) DefaultSoC() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.c.DefaultSoC
}

func (f *File) LogrusFields() logrus.Fields {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return logrus.Fields{
		"unixSocket":         f.c.UnixSocket,
		"listen":             f.c.Listen,
		"allowNonRootAccess": f.c.AllowNonRootAccess,
		"defaultSoC":         f.c.DefaultSoC,
	}
}
