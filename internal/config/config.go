// Package config loads the optional .csiface.yaml project file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".csiface.yaml"

// Config holds all configuration for the tool.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
}

// SearchConfig controls workspace file resolution.
type SearchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// OutputConfig controls where generated interface files are placed.
type OutputConfig struct {
	Dir string `yaml:"dir"` // relative to the class file; "" = same directory
}

// HistoryConfig controls the operation-history index.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // base directory for the index; "" = .csiface
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Includes: []string{"**/*.cs"},
			Excludes: []string{"**/bin/**", "**/obj/**"},
		},
		Output: OutputConfig{
			Dir: "",
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     ".csiface",
		},
	}
}

// Load reads the config file from dir, falling back to defaults when the
// file does not exist. Unknown keys are ignored.
func Load(dir string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Search.Includes) == 0 {
		cfg.Search.Includes = DefaultConfig().Search.Includes
	}
	return cfg, nil
}

// Save writes the config to dir.
func Save(dir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}
