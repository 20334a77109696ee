package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points discovery at empty directories and clears NOMINAL_* vars.
func isolate(t *testing.T) (cwd, global string) {
	t.Helper()
	cwd = t.TempDir()
	xdg := t.TempDir()
	t.Chdir(cwd)
	t.Setenv("XDG_CONFIG_HOME", xdg)
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "OUTPUT", "DATABASE", "TAG", "CONFIG"} {
		t.Setenv(EnvPrefix+k, "")
	}
	global = filepath.Join(xdg, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(global, 0o755))
	return cwd, global
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultDatabase, cfg.Database)
	assert.Equal(t, SourceDefault, cfg.Sources[KeyOutput])
	assert.NoError(t, cfg.Validate())
}

func TestLoadAll_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadAll(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, NewDefault().Output, cfg.Output)
	assert.Equal(t, SourceDefault, cfg.Sources[KeyLogLevel])
}

func TestLoadAll_Precedence(t *testing.T) {
	cwd, global := isolate(t)

	writeFile(t, filepath.Join(global, "config.yaml"), "output: yaml\nlogLevel: debug\ndatabase: global.db\n")
	writeFile(t, filepath.Join(cwd, ".nominal.yaml"), "output: json\ntag: user\n")
	t.Setenv("NOMINAL_LOG_LEVEL", "error")

	cfg, err := LoadAll(LoadOptions{})
	require.NoError(t, err)
	cfg.ApplyFlag(KeyDatabase, "flag.db")

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, SourceLocal, cfg.Sources[KeyOutput])
	assert.Equal(t, "user", cfg.Tag)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, SourceEnv, cfg.Sources[KeyLogLevel])
	assert.Equal(t, "flag.db", cfg.Database)
	assert.Equal(t, SourceFlag, cfg.Sources[KeyDatabase])
	assert.Equal(t, SourceDefault, cfg.Sources[KeyLogFormat])
}

func TestLoadAll_ExplicitFileReplacesLocal(t *testing.T) {
	cwd, _ := isolate(t)

	writeFile(t, filepath.Join(cwd, ".nominal.yaml"), "output: json\n")
	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, explicit, "logFormat: json\n")

	cfg, err := LoadAll(LoadOptions{ConfigFile: explicit})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, SourceFile, cfg.Sources[KeyLogFormat])
	assert.Equal(t, DefaultOutput, cfg.Output, "local file must be skipped")
}

func TestLoadAll_ConfigFromEnv(t *testing.T) {
	isolate(t)

	explicit := filepath.Join(t.TempDir(), "env.yaml")
	writeFile(t, explicit, "tag: org\n")
	t.Setenv(EnvConfig, explicit)

	cfg, err := LoadAll(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "org", cfg.Tag)
}

func TestLoadAll_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := LoadAll(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadConfigFile_SyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "output: json\nlogLevel: [debug\n")

	_, err := LoadConfigFile(path)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, path, ce.Path)
	assert.Positive(t, ce.Line)
	assert.Contains(t, ce.Error(), "(line ")
}

func TestLoadConfigFile_TypeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "output: json\ntag:\n  nested: value\n")

	_, err := LoadConfigFile(path)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3, ce.Line)
}

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		err  ConfigError
		want string
	}{
		{ConfigError{Path: "a.yaml", Message: "boom"}, "a.yaml: boom"},
		{ConfigError{Path: "a.yaml", Line: 2, Message: "boom"}, "a.yaml (line 2): boom"},
		{ConfigError{Path: "a.yaml", Line: 2, Column: 5, Message: "boom"}, "a.yaml (line 2, column 5): boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"uppercase output", func(c *Config) { c.Output = "JSON" }, ""},
		{"bad output", func(c *Config) { c.Output = "xml" }, `output "xml"`},
		{"bad log format", func(c *Config) { c.LogFormat = "logfmt" }, `logFormat "logfmt"`},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, `logLevel "trace"`},
		{"empty database", func(c *Config) { c.Database = "" }, "database must not be empty"},
		{"tag with space", func(c *Config) { c.Tag = "a b" }, `tag "a b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeConfig_NilSource(t *testing.T) {
	cfg := NewDefault()
	MergeConfig(cfg, nil, SourceFlag)
	assert.Equal(t, SourceDefault, cfg.Sources[KeyOutput])
}
