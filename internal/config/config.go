package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultURL             = "https://raw.githubusercontent.com/kittenpub/database-repository/main/ds_salaries.csv"
	DefaultTimeout         = 30 * time.Second
	DefaultExperienceLevel = "SE"
)

// Config holds the settings for one dataset run
type Config struct {
	URL             string
	Timeout         time.Duration
	ExperienceLevel string
	Proxy           string
}

// fileConfig mirrors Config with the timeout kept as a duration string ("45s")
type fileConfig struct {
	URL             string `yaml:"url"`
	Timeout         string `yaml:"timeout"`
	ExperienceLevel string `yaml:"experience_level"`
	Proxy           string `yaml:"proxy"`
}

func Default() Config {
	return Config{
		URL:             DefaultURL,
		Timeout:         DefaultTimeout,
		ExperienceLevel: DefaultExperienceLevel,
	}
}

// Load reads a YAML file and overlays it on the defaults. Keys left out of the
// file keep their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.URL != "" {
		cfg.URL = fc.URL
	}
	if fc.ExperienceLevel != "" {
		cfg.ExperienceLevel = fc.ExperienceLevel
	}
	if fc.Proxy != "" {
		cfg.Proxy = fc.Proxy
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.ExperienceLevel == "" {
		return fmt.Errorf("experience_level is required")
	}
	return nil
}
