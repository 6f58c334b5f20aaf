// Package config loads monorun's optional tool configuration.
//
// A project may carry a .monorun.yaml at its root supplying defaults for
// run behavior; command-line flags always win. The file location can be
// overridden with the MONORUN_CONFIG environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable that overrides the config
// file location.
const EnvConfigPath = "MONORUN_CONFIG"

// FileName is the config file looked up at the project root.
const FileName = ".monorun.yaml"

// Config holds tool defaults read from .monorun.yaml.
type Config struct {
	// Mode is the default run mode: "sequential" or "parallel".
	Mode string `yaml:"mode,omitempty"`

	// FailFast stops sequential runs at the first failure.
	FailFast bool `yaml:"fail_fast,omitempty"`

	// NoColor disables colored output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Load reads the config for a project root: MONORUN_CONFIG if set,
// otherwise <root>/.monorun.yaml. A missing file yields the zero config.
func Load(root string) (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Mode {
	case "", "sequential", "parallel":
		return nil
	default:
		return fmt.Errorf("config: unknown mode %q (must be sequential or parallel)", cfg.Mode)
	}
}
