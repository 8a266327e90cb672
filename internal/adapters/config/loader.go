// Package config provides the configuration loader for the advent runner.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "advent.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
// A missing file yields the defaults.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(cwd, name))
}

// adventfile represents the structure of the advent.yaml configuration file.
type adventfile struct {
	Version string   `yaml:"version"`
	Inputs  string   `yaml:"inputs"`
	Cache   cacheDTO `yaml:"cache"`
}

// cacheDTO represents the answer cache settings in the configuration.
type cacheDTO struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a configuration file from the given path and returns a
// domain.Config with defaults applied for any omitted field.
func Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file adventfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Inputs != "" {
		cfg.InputsDir = file.Inputs
	}
	if file.Cache.Enabled != nil {
		cfg.CacheEnabled = *file.Cache.Enabled
	}
	if file.Cache.Path != "" {
		cfg.CachePath = file.Cache.Path
	}

	return cfg, nil
}
