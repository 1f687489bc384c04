// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// defaultPaths are tried in order when no explicit path is given.
func defaultPaths() []string {
	paths := []string{"corredor.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "corredor", "corredor.yml"))
	}
	return paths
}

// Load reads and validates the configuration file at path. With an empty
// path the default locations are tried in order; if none exists the zero
// configuration is returned, since every setting can also come from flags.
func Load(path string) (*AppConfig, error) {
	paths := []string{path}
	explicit := path != ""
	if !explicit {
		paths = defaultPaths()
	}

	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return &AppConfig{Output: OutputConfig{Dir: "."}}, nil
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	return &cfg, nil
}
