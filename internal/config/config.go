// Package config loads the pipeline configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives one ingest run. InputPath points at a settlement file or a
// directory to scan for the newest one; exactly one input must be set
// before the run starts (the CLI flag can supply it).
type Config struct {
	InputPath  string `yaml:"input_path"`
	OutputDir  string `yaml:"output_dir"`
	WorkDir    string `yaml:"work_dir"`
	Permissive bool   `yaml:"permissive"`
	WriteXLSX  bool   `yaml:"write_xlsx"`
	RunLogName string `yaml:"run_log_name"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		OutputDir:  "out",
		WorkDir:    os.TempDir(),
		RunLogName: "run_log.json",
	}
}

// Load reads a YAML configuration file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "out"
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = os.TempDir()
	}
	if cfg.RunLogName == "" {
		cfg.RunLogName = "run_log.json"
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path is required (set input_path or pass --input)")
	}
	return nil
}
