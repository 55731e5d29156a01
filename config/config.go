// Package config provides configuration loading and access for the lab.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/mitosis/cell"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all lab configuration parameters.
type Config struct {
	Lab       LabConfig        `yaml:"lab"`
	Oxygen    OxygenConfig     `yaml:"oxygen"`
	Templates []TemplateConfig `yaml:"templates"`
	Telemetry TelemetryConfig  `yaml:"telemetry"`
	Logging   LoggingConfig    `yaml:"logging"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// LabConfig holds session behaviour.
type LabConfig struct {
	Seed       int64 `yaml:"seed"`        // Identifier seed (0 = random ids)
	GrowPasses int   `yaml:"grow_passes"` // Grows applied when a weak cell is helped before dividing
	Color      bool  `yaml:"color"`       // Colored console output
}

// OxygenConfig bounds a single oxygen dose given from the console.
type OxygenConfig struct {
	MinDose int `yaml:"min_dose"`
	MaxDose int `yaml:"max_dose"`
}

// TemplateConfig describes an extra template registered at startup.
// A template with a built-in name replaces the built-in seed.
type TemplateConfig struct {
	Name      string   `yaml:"name"`
	Kind      string   `yaml:"kind"`      // basic, blood or brain (empty = basic)
	DNA       string   `yaml:"dna"`       // Defaults to cell.SeedDNA
	Energy    int      `yaml:"energy"`    // 0 = cell.DefaultEnergy
	Oxygen    int      `yaml:"oxygen"`    // Blood only
	Knowledge []string `yaml:"knowledge"` // Brain only
}

// TelemetryConfig holds journal output parameters.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // Empty disables CSV output
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TemplateKinds []cell.Kind // Parsed kind per Templates entry
	LogLevel      slog.Level
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived validates the loaded values and fills Derived.
func (c *Config) computeDerived() error {
	if c.Lab.GrowPasses < 0 {
		c.Lab.GrowPasses = 0
	}
	if c.Oxygen.MinDose > c.Oxygen.MaxDose {
		return fmt.Errorf("oxygen: min_dose %d exceeds max_dose %d", c.Oxygen.MinDose, c.Oxygen.MaxDose)
	}

	c.Derived.TemplateKinds = make([]cell.Kind, len(c.Templates))
	for i := range c.Templates {
		tmpl := &c.Templates[i]
		tmpl.Name = strings.TrimSpace(tmpl.Name)
		if tmpl.Name == "" {
			return fmt.Errorf("templates[%d]: name is required", i)
		}
		kind, err := cell.ParseKind(tmpl.Kind)
		if err != nil {
			return fmt.Errorf("templates[%d] %q: %w", i, tmpl.Name, err)
		}
		c.Derived.TemplateKinds[i] = kind
		if tmpl.DNA == "" {
			tmpl.DNA = cell.SeedDNA
		}
		if tmpl.Energy == 0 {
			tmpl.Energy = cell.DefaultEnergy
		}
	}

	if err := c.Derived.LogLevel.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
