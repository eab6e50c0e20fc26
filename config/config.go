// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the infocode CLI:
// which texts to analyse, where to write reports and how to exercise the
// Hamming code.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infocode/frequency"
	"github.com/katalvlaran/infocode/hamming"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of infocode.yaml.
type Config struct {
	// Texts to analyse, each reported under its own name.
	Inputs []Input `yaml:"inputs"`

	// Directory for CSV reports; created on demand.
	OutputDir string `yaml:"output_dir"`

	// Workbook file name inside OutputDir holding one sheet per input;
	// "" disables it.
	Workbook string `yaml:"workbook"`

	// Unicode normalization applied before counting: "", NFC, NFD, NFKC, NFKD.
	Normalize string `yaml:"normalize"`

	Histogram HistogramConfig `yaml:"histogram"`
	Hamming   HammingConfig   `yaml:"hamming"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Input names one text file.
type Input struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"` // WHATWG label, e.g. utf-8, windows-1251; empty means utf-8
}

// HistogramConfig controls the console probability histogram.
type HistogramConfig struct {
	Enabled bool `yaml:"enabled"`
	Width   int  `yaml:"width"` // cells of the longest bar
	Limit   int  `yaml:"limit"` // most probable symbols shown; 0 = all
}

// HammingConfig selects the text whose bytes are protected and the
// positions (1..14 within each byte) to corrupt before correction.
type HammingConfig struct {
	Text  string `yaml:"text"`
	Flips []int  `yaml:"flips"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Workbook:  "analysis.xlsx",
		Histogram: HistogramConfig{Width: 40},
		Hamming:   HammingConfig{Text: "Б"},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks names, encodings, normalization form, flip positions and
// log level.
func (c *Config) Validate() error {
	names := make(map[string]struct{}, len(c.Inputs))
	for i, in := range c.Inputs {
		if in.Name == "" || in.Path == "" {
			return fmt.Errorf("%w: inputs[%d] needs name and path", ErrInvalid, i)
		}
		if _, dup := names[in.Name]; dup {
			return fmt.Errorf("%w: duplicate input name %q", ErrInvalid, in.Name)
		}
		names[in.Name] = struct{}{}
		if in.Encoding != "" {
			if _, err := htmlindex.Get(in.Encoding); err != nil {
				return fmt.Errorf("%w: inputs[%d] encoding %q: %v", ErrInvalid, i, in.Encoding, err)
			}
		}
	}
	if c.Normalize != "" {
		if _, ok := frequency.ParseForm(c.Normalize); !ok {
			return fmt.Errorf("%w: unknown normalization %q", ErrInvalid, c.Normalize)
		}
	}
	if c.Workbook != "" && (filepath.Ext(c.Workbook) != ".xlsx" || filepath.Base(c.Workbook) != c.Workbook) {
		return fmt.Errorf("%w: workbook %q must be a plain .xlsx file name", ErrInvalid, c.Workbook)
	}
	if c.Histogram.Width < 0 || c.Histogram.Limit < 0 {
		return fmt.Errorf("%w: histogram width and limit must be ≥ 0", ErrInvalid)
	}
	if c.Histogram.Enabled && c.Histogram.Width == 0 {
		return fmt.Errorf("%w: histogram width must be > 0 when enabled", ErrInvalid)
	}
	for _, pos := range c.Hamming.Flips {
		if pos < 1 || pos > hamming.ByteCodeBits {
			return fmt.Errorf("%w: flip position %d outside 1..%d", ErrInvalid, pos, hamming.ByteCodeBits)
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
