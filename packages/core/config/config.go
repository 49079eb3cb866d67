package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the affirm configuration.
type Config struct {
	NoColor     *bool    `yaml:"noColor,omitempty"`
	Verbose     *bool    `yaml:"verbose,omitempty"`
	Bail        *bool    `yaml:"bail,omitempty"`
	HistoryPath string   `yaml:"historyPath,omitempty"`
	MarkerDirs  []string `yaml:"markerDirs,omitempty"`
}

// Filenames contains the possible config file names, checked in order.
var Filenames = []string{
	".affirm.yaml",
	"affirm.yaml",
}

// Load reads the configuration from path, or searches the working
// directory for the well-known file names when path is empty. A missing
// file yields the defaults, not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = findConfig()
	}
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{}, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &Config{}, err
	}
	return cfg, nil
}

func findConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, name := range Filenames {
		candidate := filepath.Join(cwd, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false.
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false.
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetBail returns the bail setting, defaulting to false.
func (c *Config) GetBail() bool {
	return getBool(c.Bail, false)
}

// GetHistoryPath returns the run-history database path, defaulting to
// .affirm/history.db.
func (c *Config) GetHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return filepath.Join(".affirm", "history.db")
}
