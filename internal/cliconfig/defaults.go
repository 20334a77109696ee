package cliconfig

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// DefaultOutput is the default command output format.
const DefaultOutput = OutputText

// DefaultDatabase runs fixture verification against a private in-memory database.
const DefaultDatabase = ":memory:"

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Output:    DefaultOutput,
		Database:  DefaultDatabase,
		Sources:   make(map[string]string),
	}
	for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyOutput, KeyDatabase} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
