// Package config provides configuration management for the symcheck CLI.
//
// Values are layered with koanf. Precedence (highest to lowest):
// flags > SYMCHECK_ env vars > config file > defaults.
package config

import "github.com/leapstack-labs/symcheck/pkg/symbols"

// Config holds all CLI configuration options.
type Config struct {
	Symbols   []string `koanf:"symbols"` // Default reference set
	Output    string   `koanf:"output"`
	Verbose   bool     `koanf:"verbose"`
	LogLevel  string   `koanf:"log_level"`
	LogFormat string   `koanf:"log_format"`
	Jobs      int      `koanf:"jobs"` // Concurrent cases for `check`
}

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultJobs      = 4
	EnvPrefix        = "SYMCHECK_"
)

// ConfigFileNames are the names searched in the working directory when no
// --config flag is given.
var ConfigFileNames = []string{"symcheck.yaml", "symcheck.yml"}

// Default returns a Config holding the default values.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Jobs:      DefaultJobs,
	}
}

// Reference returns the configured reference set.
func (c *Config) Reference() symbols.Set {
	return symbols.NewSet(c.Symbols...)
}
