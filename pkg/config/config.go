// Package config loads the YAML site configuration driving page generation.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Site is the top-level configuration document.
type Site struct {
	Title    string `yaml:"title"`
	Timezone string `yaml:"timezone"`
	Theme    Theme  `yaml:"theme"`
	Data     Data   `yaml:"data"`
	Output   string `yaml:"output"`
}

// Theme selects the page theme and variant.
type Theme struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

// Data points at the flat-file forecast sources. Empty paths mean the caller
// falls back to generated data.
type Data struct {
	ThisWeek string `yaml:"this_week"`
	NextWeek string `yaml:"next_week"`
}

// Default returns the configuration used when no file is supplied.
func Default() Site {
	return Site{
		Title:    "She Codes Weather",
		Timezone: "Australia/Brisbane",
	}
}

// Load reads and validates a YAML configuration file. Missing optional fields
// fall back to defaults.
func Load(path string) (Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	site, err := Parse(raw)
	if err != nil {
		return Site{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates a YAML configuration document.
func Parse(raw []byte) (Site, error) {
	site := Default()
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return Site{}, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate enforces the configuration invariants.
func (s Site) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required.Error("title is required")),
		validation.Field(&s.Timezone, validation.Required, validation.By(func(any) error {
			if _, err := time.LoadLocation(strings.TrimSpace(s.Timezone)); err != nil {
				return validation.NewError("config_timezone_unknown", fmt.Sprintf("unknown timezone %q", s.Timezone))
			}
			return nil
		})),
	)
}

// Location resolves the configured IANA timezone.
func (s Site) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(s.Timezone))
	if err != nil {
		return nil, fmt.Errorf("config: load timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
