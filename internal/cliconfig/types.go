package cliconfig

// Config represents the complete configuration for the nominal CLI.
type Config struct {
	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel" env:"LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" json:"logFormat" env:"LOG_FORMAT"`

	// Output is the rendering used by commands: text, json or yaml.
	Output string `yaml:"output" json:"output" env:"OUTPUT"`

	// Database is the SQLite path used by "nominal verify".
	Database string `yaml:"database" json:"database" env:"DATABASE"`

	// Tag is the default tag applied by "nominal inspect".
	Tag string `yaml:"tag,omitempty" json:"tag,omitempty" env:"TAG"`

	// Source tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Field keys used in Sources.
const (
	KeyLogLevel  = "logLevel"
	KeyLogFormat = "logFormat"
	KeyOutput    = "output"
	KeyDatabase  = "database"
	KeyTag       = "tag"
)

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)
