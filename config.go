package partquote

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level supplier catalog configuration.
type Config struct {
	Suppliers []SupplierConfig `yaml:"suppliers"`
}

// SupplierConfig configures a single supplier's price list.
type SupplierConfig struct {
	Name  string        `yaml:"name"`
	Parts []PriceConfig `yaml:"parts"`
}

// PriceConfig is one price list entry. Part uses the "category:option" form.
type PriceConfig struct {
	Part  string  `yaml:"part"`
	Price float64 `yaml:"price"`
}

// LoadConfig reads and parses a YAML config file.
// Environment variables in the format ${VAR} are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("partquote: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates YAML config data.
func ParseConfig(data []byte) (Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("partquote: parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the config for required fields and consistency.
func (c Config) Validate() error {
	if len(c.Suppliers) == 0 {
		return fmt.Errorf("partquote: config: at least one supplier is required")
	}

	names := make(map[string]bool, len(c.Suppliers))
	for i, sup := range c.Suppliers {
		if sup.Name == "" {
			return fmt.Errorf("partquote: config: suppliers[%d]: name is required", i)
		}
		if names[sup.Name] {
			return fmt.Errorf("partquote: config: duplicate supplier name %q", sup.Name)
		}
		names[sup.Name] = true

		seen := make(map[Part]bool, len(sup.Parts))
		for j, pc := range sup.Parts {
			part, err := ParsePart(pc.Part)
			if err != nil {
				return fmt.Errorf("partquote: config: suppliers[%d] (%s): parts[%d]: %w", i, sup.Name, j, err)
			}
			if !ValidPrice(pc.Price) {
				return fmt.Errorf("partquote: config: suppliers[%d] (%s): parts[%d]: price must be finite and non-negative", i, sup.Name, j)
			}
			if seen[part] {
				return fmt.Errorf("partquote: config: suppliers[%d] (%s): duplicate part %s", i, sup.Name, part)
			}
			seen[part] = true
		}
	}

	return nil
}

// PriceList returns the supplier's prices keyed by parsed part.
// It assumes the config has been validated.
func (s SupplierConfig) PriceList() map[Part]float64 {
	prices := make(map[Part]float64, len(s.Parts))
	for _, pc := range s.Parts {
		part, err := ParsePart(pc.Part)
		if err != nil {
			continue
		}
		prices[part] = pc.Price
	}
	return prices
}
