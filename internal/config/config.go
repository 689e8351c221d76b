// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/rolodex/internal/contact"
)

// Config holds all rolodex configuration.
type Config struct {
	Display Display `yaml:"display"`
	Seed    Seed    `yaml:"seed"`
	Log     Log     `yaml:"log"`
}

// Display holds list presentation settings.
type Display struct {
	Sort string `yaml:"sort"` // "name" | "phone" | "email"
}

// Seed controls which contacts the store starts with.
type Seed struct {
	Samples  bool          `yaml:"samples"`  // Load the built-in sample contacts
	Contacts []SeedContact `yaml:"contacts"` // Appended after the samples
}

// SeedContact is a contact listed in the config file.
type SeedContact struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

// Log holds logging settings. An empty File disables logging.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Display: Display{Sort: "name"},
		Seed:    Seed{Samples: true},
		Log:     Log{Level: "info"},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
// Seed contacts from every layer are concatenated in layer order.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if _, err := contact.ParseSortKey(c.Display.Sort); err != nil {
		return fmt.Errorf("config: display.sort must be \"name\", \"phone\" or \"email\", got %q", c.Display.Sort)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	for i, sc := range c.Seed.Contacts {
		if strings.TrimSpace(sc.Name) == "" || strings.TrimSpace(sc.Phone) == "" {
			return fmt.Errorf("config: seed.contacts[%d]: name and phone cannot be empty", i)
		}
	}
	return nil
}

// SortKey returns the parsed display sort key, falling back to name.
func (c *Config) SortKey() contact.SortKey {
	k, err := contact.ParseSortKey(c.Display.Sort)
	if err != nil {
		return contact.SortByName
	}
	return k
}

// SeedContacts returns the contacts the store should start with:
// the samples (when enabled) followed by the configured contacts.
func (c *Config) SeedContacts() []contact.Contact {
	var out []contact.Contact
	if c.Seed.Samples {
		out = append(out, contact.Samples()...)
	}
	for _, sc := range c.Seed.Contacts {
		out = append(out, contact.Contact{Name: sc.Name, Phone: sc.Phone, Email: sc.Email})
	}
	return out
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLODEX_SORT, ROLODEX_LOG_FILE, ROLODEX_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLODEX_SORT"); v != "" {
		if _, err := contact.ParseSortKey(v); err != nil {
			return fmt.Errorf("config: invalid ROLODEX_SORT %q: %w", v, err)
		}
		c.Display.Sort = v
	}
	if v := os.Getenv("ROLODEX_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("ROLODEX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Display *rawDisplay `yaml:"display"`
	Seed    *rawSeed    `yaml:"seed"`
	Log     *rawLog     `yaml:"log"`
}

type rawDisplay struct {
	Sort *string `yaml:"sort"`
}

type rawSeed struct {
	Samples  *bool         `yaml:"samples"`
	Contacts []SeedContact `yaml:"contacts"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Display != nil {
		if layer.Display.Sort != nil {
			c.Display.Sort = *layer.Display.Sort
		}
	}
	if layer.Seed != nil {
		if layer.Seed.Samples != nil {
			c.Seed.Samples = *layer.Seed.Samples
		}
		c.Seed.Contacts = append(c.Seed.Contacts, layer.Seed.Contacts...)
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
