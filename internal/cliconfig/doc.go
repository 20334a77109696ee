// Package cliconfig provides configuration types and loading for the nominal CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (NOMINAL_* prefix)
//  3. Explicit config file (--config or NOMINAL_CONFIG), otherwise the
//     local config file (.nominal.yaml in the current directory)
//  4. Global config file ($XDG_CONFIG_HOME/nominal/config.yaml)
//  5. Default values
//
// The source of each value is tracked in Config.Sources so that
// "nominal config" style diagnostics can explain where a setting came from.
package cliconfig
