package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/nominal/internal/cliconfig"
	"github.com/getmockd/nominal/pkg/cli/internal/output"
)

// ConfigEntry is one resolved setting.
type ConfigEntry struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long:  `Show each resolved setting and the layer it came from (default, global, local, file, env or flag).`,
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func configEntries(c *cliconfig.Config) []ConfigEntry {
	source := func(key string) string {
		if s, ok := c.Sources[key]; ok {
			return s
		}
		return cliconfig.SourceDefault
	}
	return []ConfigEntry{
		{cliconfig.KeyLogLevel, c.LogLevel, source(cliconfig.KeyLogLevel)},
		{cliconfig.KeyLogFormat, c.LogFormat, source(cliconfig.KeyLogFormat)},
		{cliconfig.KeyOutput, c.Output, source(cliconfig.KeyOutput)},
		{cliconfig.KeyDatabase, c.Database, source(cliconfig.KeyDatabase)},
		{cliconfig.KeyTag, c.Tag, source(cliconfig.KeyTag)},
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	entries := configEntries(cfg)
	return output.Render(cmd.OutOrStdout(), outputFormat(), entries, func(w io.Writer) error {
		tw := output.Table(w)
		fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
		for _, e := range entries {
			value := e.Value
			if value == "" {
				value = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, value, e.Source)
		}
		return tw.Flush()
	})
}
