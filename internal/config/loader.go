package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a run configuration.
// Search order: explicit path -> ./fortress.yaml -> built-in default.
// Loaded files are overlaid on the default so partial configs work.
func Load(path string) (RunConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if data, err := os.ReadFile("fortress.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse fortress.yaml: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	return cfg, nil
}
