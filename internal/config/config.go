package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the nora CLI configuration.
type Config struct {
	// Display names the X server to freeze, "host:number" like ":0".
	// Empty means use $DISPLAY at connect time.
	Display string `yaml:"display"`
	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose"`
}

const (
	envDisplay = "NORA_DISPLAY"
	envVerbose = "NORA_VERBOSE"
)

// Load assembles the effective configuration from file, environment and
// flags, in that order of increasing precedence.
//
// path selects an explicit config file and any failure to read it is an
// error. An empty path means walk-up discovery, where a missing file is
// fine and defaults apply.
func Load(path, flagDisplay string, flagVerbose bool) (*Config, error) {
	cfg := &Config{}

	// 1. Config file as base
	explicit := path != ""
	if !explicit {
		path = DiscoverConfig()
	}
	if path != "" {
		data, err := os.ReadFile(expandPath(path))
		switch {
		case err != nil && explicit:
			return nil, fmt.Errorf("read config: %w", err)
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// 2. Environment variables override the file
	if v := os.Getenv(envDisplay); v != "" {
		cfg.Display = v
	}
	if v := os.Getenv(envVerbose); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}

	// 3. CLI flags override everything
	if flagDisplay != "" {
		cfg.Display = flagDisplay
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Display != "" && !strings.Contains(c.Display, ":") {
		return fmt.Errorf("display %q: want host:number, like \":0\"", c.Display)
	}
	return nil
}
