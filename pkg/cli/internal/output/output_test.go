package output

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	Input  string `json:"input" yaml:"input"`
	Base32 string `json:"base32" yaml:"base32"`
}

func TestRender(t *testing.T) {
	v := []result{{Input: "0188bac7-a64e-7a51-843c-441ad1d9cbc6", Base32: "01h2xcf9jef98r8f243b8xkjy6"}}
	text := func(w io.Writer) error {
		_, err := fmt.Fprintln(w, v[0].Base32)
		return err
	}

	tests := []struct {
		format string
		want   string
	}{
		{FormatText, "01h2xcf9jef98r8f243b8xkjy6\n"},
		{"", "01h2xcf9jef98r8f243b8xkjy6\n"},
		{FormatJSON, "[\n  {\n    \"input\": \"0188bac7-a64e-7a51-843c-441ad1d9cbc6\",\n    \"base32\": \"01h2xcf9jef98r8f243b8xkjy6\"\n  }\n]\n"},
		{"YAML", "- input: 0188bac7-a64e-7a51-843c-441ad1d9cbc6\n  base32: 01h2xcf9jef98r8f243b8xkjy6\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, tt.format, v, text))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(io.Discard, "xml", nil, nil)
	assert.EqualError(t, err, `unknown output format "xml"`)
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	fmt.Fprintln(tw, "INPUT\tVALID")
	fmt.Fprintln(tw, "abc\tfalse")
	require.NoError(t, tw.Flush())
	assert.Equal(t, "INPUT  VALID\nabc    false\n", buf.String())
}
