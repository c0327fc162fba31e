// Package config holds all textminer configuration.
// Configuration is loaded from a YAML file and may be overridden by
// environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all textminer configuration.
type Config struct {
	// Corpus input
	Corpus CorpusConfig `yaml:"corpus"`

	// Tokenizer and filtering settings
	Tokenizer TokenizerConfig `yaml:"tokenizer"`

	// Export artifacts
	Export ExportConfig `yaml:"export"`
}

// CorpusConfig locates the input corpus.
type CorpusConfig struct {
	Input string `yaml:"input"`
}

// TokenizerConfig controls tokenization and token filtering.
type TokenizerConfig struct {
	// Tokens shorter than this are dropped.
	MinTokenLength int `yaml:"min_token_length"`

	// Stopwords added on top of the built-in English list.
	ExtraStopwords []string `yaml:"extra_stopwords"`

	// When true, only ExtraStopwords are used.
	NoDefaultStopwords bool `yaml:"no_default_stopwords"`
}

// ExportConfig controls the output artifacts.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`

	// Minimum count for the thresholded CSV, workbook sheet, and chart.
	Threshold int `yaml:"threshold"`

	// Rows shown in the summary and run log tables.
	Top int `yaml:"top"`

	// Maximum number of bars rendered in the chart.
	ChartLimit  int `yaml:"chart_limit"`
	ChartWidth  int `yaml:"chart_width"`
	ChartHeight int `yaml:"chart_height"`
}

// DefaultConfig returns the default configuration.
// The extra stopword list keeps top tokens topic-focused for support-style
// corpora (devices, accounts, orders) rather than conversational filler.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Input: "data/corpus.txt",
		},

		Tokenizer: TokenizerConfig{
			MinTokenLength: 4,
			ExtraStopwords: []string{
				"would", "like", "also", "still", "really", "just",
				"get", "got", "going", "go", "one", "can", "could",
				"im", "ive", "youre", "theyre", "weve",
				"dont", "doesnt", "didnt",
				"want", "need", "know", "back", "time",
				"thanks", "thank", "please",
			},
		},

		Export: ExportConfig{
			OutputDir:   "output",
			Threshold:   250,
			Top:         20,
			ChartLimit:  50,
			ChartWidth:  1400,
			ChartHeight: 700,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TEXTMINER_INPUT"); v != "" {
		c.Corpus.Input = v
	}
	if v := os.Getenv("TEXTMINER_OUTPUT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Corpus.Input == "" {
		return fmt.Errorf("corpus.input is required")
	}
	if c.Tokenizer.MinTokenLength < 1 {
		return fmt.Errorf("tokenizer.min_token_length must be >= 1, got %d", c.Tokenizer.MinTokenLength)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}
	if c.Export.Threshold < 1 {
		return fmt.Errorf("export.threshold must be >= 1, got %d", c.Export.Threshold)
	}
	if c.Export.Top < 1 {
		return fmt.Errorf("export.top must be >= 1, got %d", c.Export.Top)
	}
	if c.Export.ChartLimit < 1 {
		return fmt.Errorf("export.chart_limit must be >= 1, got %d", c.Export.ChartLimit)
	}
	return nil
}
