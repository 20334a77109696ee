package cliconfig

import (
	"fmt"
	"strings"
)

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output %q must be one of text, json, yaml", c.Output)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("logFormat %q must be text or json", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logLevel %q must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.Database == "" {
		return fmt.Errorf("database must not be empty")
	}
	if strings.ContainsAny(c.Tag, " \t\n") {
		return fmt.Errorf("tag %q must not contain whitespace", c.Tag)
	}
	return nil
}
