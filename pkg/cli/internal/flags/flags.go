// Package flags provides reusable flag types for CLI commands.
package flags

import (
	"fmt"
	"slices"
	"strings"
)

// Enum implements pflag.Value for a flag restricted to a fixed set of
// values. Matching is case-insensitive; the stored value is lowercase.
type Enum struct {
	Allowed []string
	Value   string
}

// NewEnum returns an Enum accepting allowed, starting at def.
func NewEnum(def string, allowed ...string) *Enum {
	return &Enum{Allowed: allowed, Value: def}
}

// String returns the current value.
func (e *Enum) String() string {
	return e.Value
}

// Set validates and stores value.
func (e *Enum) Set(value string) error {
	v := strings.ToLower(value)
	if !slices.Contains(e.Allowed, v) {
		return fmt.Errorf("must be one of %s", strings.Join(e.Allowed, ", "))
	}
	e.Value = v
	return nil
}

// Type specifies the type label for Cobra flags.
func (e *Enum) Type() string {
	return strings.Join(e.Allowed, "|")
}
