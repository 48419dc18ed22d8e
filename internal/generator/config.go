package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one generation run. Flags override file values.
type Config struct {
	Rows   int    `yaml:"rows"`
	Seed   int64  `yaml:"seed"`
	Format string `yaml:"format"` // jsonl|json|xlsx
	Out    string `yaml:"out"`
}

// DefaultConfig matches the original generator defaults.
func DefaultConfig() Config {
	return Config{
		Rows:   100,
		Seed:   42,
		Format: "jsonl",
		Out:    "calls.jsonl",
	}
}

// LoadConfig reads a YAML config, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Rows <= 0 {
		return cfg, fmt.Errorf("config rows must be positive, got %d", cfg.Rows)
	}
	switch cfg.Format {
	case "jsonl", "json", "xlsx":
	default:
		return cfg, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	return cfg, nil
}
