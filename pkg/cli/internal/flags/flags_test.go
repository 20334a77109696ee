package flags

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnum(t *testing.T) {
	e := NewEnum("text", "text", "json", "yaml")
	var _ pflag.Value = e

	assert.Equal(t, "text", e.String())
	require.NoError(t, e.Set("JSON"))
	assert.Equal(t, "json", e.String())

	err := e.Set("xml")
	require.Error(t, err)
	assert.Equal(t, "must be one of text, json, yaml", err.Error())
	assert.Equal(t, "json", e.String(), "rejected value must not be stored")
	assert.Equal(t, "text|json|yaml", e.Type())
}

func TestEnum_OnFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	e := NewEnum("", "text", "json")
	fs.Var(e, "log-format", "log format")

	require.NoError(t, fs.Parse([]string{"--log-format", "Json"}))
	assert.Equal(t, "json", e.Value)
	assert.Error(t, fs.Parse([]string{"--log-format", "logfmt"}))
}
