// Package config provides configuration management for the rocket CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/orbitkit/rocket-go/internal/logging"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "ROCKET_LOG_LEVEL"
	EnvOutput   = "ROCKET_OUTPUT"
	EnvNoColor  = "ROCKET_NO_COLOR"
)

// Config represents the rocket CLI configuration.
type Config struct {
	Rocket RocketConfig `yaml:"rocket" json:"rocket"`
}

// RocketConfig contains the CLI settings.
type RocketConfig struct {
	// LogLevel is one of trace, debug, info, warn, error, off.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" json:"log_format"`

	// Output is the report format: terminal, json or yaml.
	Output string `yaml:"output" json:"output"`

	// Color enables ANSI colors in terminal output.
	Color bool `yaml:"color" json:"color"`

	// HaltOnFailure is the default for plans that do not set it.
	HaltOnFailure bool `yaml:"halt_on_failure" json:"halt_on_failure"`

	// PlansDir is where named flight plans are looked up.
	PlansDir string `yaml:"plans_dir" json:"plans_dir"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Rocket: RocketConfig{
			LogLevel:      "warn",
			LogFormat:     "text",
			Output:        "terminal",
			Color:         true,
			HaltOnFailure: true,
			PlansDir:      ".rocket/plans",
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfig searches for a configuration file starting from the given path.
func FindConfig(startPath string) (string, error) {
	candidates := []string{
		".rocket/config.yaml",
		"rocket.yaml",
		"rocket.yml",
	}

	dir := startPath
	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no rocket configuration found")
}

// LoadFromDir loads configuration from the given directory, falling back to
// defaults when no file is found. Environment overrides are applied last.
func LoadFromDir(dir string) (*Config, error) {
	config := DefaultConfig()

	if path, err := FindConfig(dir); err == nil {
		config, err = Load(path)
		if err != nil {
			return nil, err
		}
	}

	LoadDotEnv(dir)
	config.ApplyEnv()
	return config, nil
}

// LoadDotEnv loads dir/.env into the process environment if it exists.
// Variables already set in the environment win.
func LoadDotEnv(dir string) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

// ApplyEnv overrides settings from ROCKET_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Rocket.LogLevel = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Rocket.Output = v
	}
	if v := os.Getenv(EnvNoColor); v != "" && v != "0" && !strings.EqualFold(v, "false") {
		c.Rocket.Color = false
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() []error {
	var errs []error

	if _, _, err := logging.ParseLevel(c.Rocket.LogLevel); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Rocket.LogFormat) {
	case "text", "json", "":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %q", c.Rocket.LogFormat))
	}

	if !IsValidOutput(c.Rocket.Output) {
		errs = append(errs, fmt.Errorf("invalid output format: %q", c.Rocket.Output))
	}

	return errs
}

// IsValidOutput reports whether format is a supported report format.
func IsValidOutput(format string) bool {
	switch strings.ToLower(format) {
	case "terminal", "json", "yaml":
		return true
	default:
		return false
	}
}

// PlansPath returns the resolved plans directory path.
func (c *Config) PlansPath(baseDir string) string {
	if filepath.IsAbs(c.Rocket.PlansDir) {
		return c.Rocket.PlansDir
	}
	return filepath.Join(baseDir, c.Rocket.PlansDir)
}

// PlanPath resolves a plan reference. Anything that looks like a path is
// returned as is; a bare name is looked up in the plans directory with a
// .yaml extension.
func (c *Config) PlanPath(baseDir, name string) string {
	if strings.ContainsAny(name, `/\`) || filepath.Ext(name) != "" {
		return name
	}
	return filepath.Join(c.PlansPath(baseDir), name+".yaml")
}
