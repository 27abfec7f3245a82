package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GradeConfig holds runtime configuration for batch grading runs. Values can
// come from a YAML config file, CLI flags, or both (flags win).
type GradeConfig struct {
	Inputs      []string `yaml:"inputs"`
	WorkerCount int      `yaml:"worker_count"`
	DBPath      string   `yaml:"db_path"`
	Format      string   `yaml:"format"` // json or yaml
}

// Merge fills in any value this config is missing from other. Values already
// set stay as they are, which is what lets CLI flags win over the file.
func (c *GradeConfig) Merge(other *GradeConfig) {
	if len(c.Inputs) == 0 {
		c.Inputs = other.Inputs
	}
	if c.WorkerCount == 0 {
		c.WorkerCount = other.WorkerCount
	}
	if c.DBPath == "" {
		c.DBPath = other.DBPath
	}
	if c.Format == "" {
		c.Format = other.Format
	}
}

// LoadConfig reads a GradeConfig from a YAML file.
func LoadConfig(path string) (*GradeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg GradeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
