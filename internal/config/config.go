package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// FileName is the default configuration file name.
const FileName = "shiwake.yaml"

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "SHIWAKE_CONFIG"

// Config represents the top-level shiwake.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Import   ImportConfig   `yaml:"import"`
	Sources  []Source       `yaml:"sources,omitempty"`
}

// BusinessConfig identifies the filer.
type BusinessConfig struct {
	Name            string `yaml:"name"`
	FiscalYearStart int    `yaml:"fiscal_year_start"` // month, 1-12
}

// DefaultsConfig holds fallback values applied to new entries.
type DefaultsConfig struct {
	TaxCategory model.TaxCategory `yaml:"tax_category"`
}

// ImportConfig bounds a single statement import. These limits belong to
// the caller of the parsing pipeline, not the pipeline itself.
type ImportConfig struct {
	MaxRows      int   `yaml:"max_rows"`
	MaxFileBytes int64 `yaml:"max_file_bytes"`
}

// Source forces a dialect for statements whose filename contains Match,
// for banks whose headers defeat detection.
type Source struct {
	Match  string          `yaml:"match"`
	Format model.CsvFormat `yaml:"format"`
}

// Load reads a shiwake.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:            businessName,
			FiscalYearStart: 1,
		},
		Defaults: DefaultsConfig{
			TaxCategory: model.TaxStandard,
		},
		Import: ImportConfig{
			MaxRows:      1000,
			MaxFileBytes: 5 * 1024 * 1024,
		},
	}
}

// Path resolves the config file location: SHIWAKE_CONFIG wins, otherwise
// shiwake.yaml in the current directory.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return FileName
}

// FormatFor returns the forced dialect for a statement filename, or empty
// when detection should run.
func (c *Config) FormatFor(fileName string) model.CsvFormat {
	for _, s := range c.Sources {
		if s.Match != "" && strings.Contains(strings.ToLower(fileName), strings.ToLower(s.Match)) {
			return s.Format
		}
	}
	return ""
}

func (c *Config) validate() error {
	if m := c.Business.FiscalYearStart; m < 1 || m > 12 {
		return fmt.Errorf("fiscal_year_start must be 1-12, got %d", m)
	}
	if t := c.Defaults.TaxCategory; t != "" && !t.Valid() {
		return fmt.Errorf("unknown default tax_category %q", t)
	}
	for _, s := range c.Sources {
		if !s.Format.Valid() {
			return fmt.Errorf("source %q: unknown format %q", s.Match, s.Format)
		}
	}
	return nil
}
