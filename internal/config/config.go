// Package config loads the command line defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tzneal/geodesy"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration file structure.
type Config struct {
	Datum        string `yaml:"datum" json:"datum"`
	Region       string `yaml:"region,omitempty" json:"region,omitempty"`
	DistanceUnit string `yaml:"distance_unit" json:"distance_unit"`
	AreaUnit     string `yaml:"area_unit" json:"area_unit"`
	Method       string `yaml:"method" json:"method"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Datum:        "WGS84",
		DistanceUnit: "m",
		AreaUnit:     "m2",
		Method:       "vincenty",
	}
}

// Load reads and parses the YAML configuration file at path. Keys missing
// from the file keep their default values, and a missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the names in the configuration against the datum registry
// and the unit and method parsers.
func (c *Config) Validate() error {
	if _, err := c.LookupDatum(); err != nil {
		return err
	}
	if _, err := geodesy.ParseDistanceUnit(c.DistanceUnit); err != nil {
		return err
	}
	if _, err := geodesy.ParseAreaUnit(c.AreaUnit); err != nil {
		return err
	}
	if _, err := geodesy.ParseMethod(c.Method); err != nil {
		return err
	}
	return nil
}

// LookupDatum returns the configured datum bound to the configured region.
func (c *Config) LookupDatum() (geodesy.Datum, error) {
	return geodesy.LookupDatum(c.Datum, c.Region)
}
