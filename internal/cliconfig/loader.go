package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir is the directory for global config.
const GlobalConfigDir = "nominal"

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".nominal.yaml", ".nominal.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .nominal.yaml or .nominal.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return firstExisting(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir simply means no global config
		return "", nil
	}
	return firstExisting(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigFile loads a Config from a YAML file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newConfigError(path, err)
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s (line %d, column %d): %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s (line %d): %s", e.Path, e.Line, e.Message)
	default:
		return e.Path + ": " + e.Message
	}
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// newConfigError extracts the first line number yaml.v3 reports, if any.
// yaml.v3 does not expose columns, so Column stays zero.
func newConfigError(path string, err error) *ConfigError {
	msg := err.Error()
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	ce := &ConfigError{Path: path, Message: msg}
	if m := yamlLine.FindStringSubmatch(msg); m != nil {
		ce.Line, _ = strconv.Atoi(m[1])
	}
	return ce
}

// LoadOptions controls which files LoadAll reads.
type LoadOptions struct {
	// ConfigFile replaces local config discovery when set. A missing
	// explicit file is an error; missing discovered files are not.
	ConfigFile string
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: flags > env > explicit or local config > global config > defaults.
// Flags are applied by the caller through ApplyFlag.
func LoadAll(opts LoadOptions) (*Config, error) {
	cfg := NewDefault()

	if globalPath, err := FindGlobalConfig(); err == nil && globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, globalCfg, SourceGlobal)
	}

	if opts.ConfigFile == "" {
		opts.ConfigFile = ConfigFileFromEnv()
	}
	if opts.ConfigFile != "" {
		fileCfg, err := LoadConfigFile(opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		MergeConfig(cfg, fileCfg, SourceFile)
	} else if localPath, err := FindLocalConfig(); err == nil && localPath != "" {
		localCfg, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, localCfg, SourceLocal)
	}

	if err := LoadEnvConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyFlag records a value given on the command line.
func (c *Config) ApplyFlag(key, value string) {
	MergeConfig(c, fromKey(key, value), SourceFlag)
}

func fromKey(key, value string) *Config {
	var cfg Config
	switch key {
	case KeyLogLevel:
		cfg.LogLevel = value
	case KeyLogFormat:
		cfg.LogFormat = value
	case KeyOutput:
		cfg.Output = value
	case KeyDatabase:
		cfg.Database = value
	case KeyTag:
		cfg.Tag = value
	}
	return &cfg
}
