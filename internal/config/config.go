package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string `yaml:"version"`
	Stream  string `yaml:"stream"`

	Tests struct {
		IgnorePackages []string `yaml:"ignore_packages"`
	} `yaml:"tests"`
}

// Load reads the scaffold config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// IgnoredPackages returns the packages excluded from test reports.
func (c *Config) IgnoredPackages() map[string]struct{} {
	ignored := make(map[string]struct{}, len(c.Tests.IgnorePackages))
	for _, l := range c.Tests.IgnorePackages {
		l = strings.TrimSpace(l)
		if l != "" {
			ignored[l] = struct{}{}
		}
	}
	return ignored
}
