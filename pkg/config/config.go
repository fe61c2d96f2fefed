package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML config file at path. A missing file returns
// an *os.PathError satisfying os.IsNotExist, which callers treat as
// "no file configured" rather than a fatal error.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
