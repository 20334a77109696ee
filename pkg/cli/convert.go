package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/nominal/pkg/cli/internal/output"
	"github.com/getmockd/nominal/pkg/uuid32"
)

// Conversion is one converted input.
type Conversion struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

var encodeCmd = &cobra.Command{
	Use:   "encode [hex-uuid...]",
	Short: "Convert hyphenated hex UUIDs to base32",
	Long: `Convert 36-character hyphenated hex UUIDs, in any letter case, to the
26-character lowercase base32 form. Reads one value per line from stdin when
no arguments are given.`,
	Example: `  nominal encode 0188bac7-a64e-7a51-843c-441ad1d9cbc6
  cat ids.txt | nominal encode -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, uuid32.HexToBase32)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [base32-uuid...]",
	Short: "Convert base32 UUIDs to hyphenated hex",
	Long: `Convert 26-character base32 UUIDs, in any letter case, to the canonical
lowercase hyphenated hex form. Reads one value per line from stdin when no
arguments are given.`,
	Example: `  nominal decode 01h2xcf9jef98r8f243b8xkjy6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, uuid32.Base32ToHex)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func runConversion(cmd *cobra.Command, args []string, convert func(string) (string, error)) error {
	values, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]Conversion, len(values))
	invalid := 0
	for i, v := range values {
		results[i].Input = v
		out, err := convert(v)
		if err != nil {
			invalid++
			results[i].Error = err.Error()
			logger.Debug("conversion failed", "command", cmd.Name(), "input", v, "error", err)
			continue
		}
		results[i].Output = out
	}

	err = output.Render(cmd.OutOrStdout(), outputFormat(), results, func(w io.Writer) error {
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), r.Error)
				continue
			}
			fmt.Fprintln(w, r.Output)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if invalid > 0 {
		return &InvalidInputsError{Invalid: invalid, Total: len(values)}
	}
	return nil
}
