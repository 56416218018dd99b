package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "", "auto", "text", "markdown", "md", "json":
	default:
		return fmt.Errorf("invalid output format %q (expected auto, text, markdown or json)", c.Output)
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (expected text or json)", c.LogFormat)
	}

	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}
