package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/nominal/pkg/cli/internal/output"
	"github.com/getmockd/nominal/pkg/uuid32"
)

// Form names reported by check.
const (
	FormHex    = "hex"
	FormBase32 = "base32"
)

// CheckResult reports the validity of one input.
type CheckResult struct {
	Input string `json:"input" yaml:"input"`
	Form  string `json:"form,omitempty" yaml:"form,omitempty"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [value...]",
	Short: "Check whether values are valid hex or base32 UUIDs",
	Long: `Check each value as a hyphenated hex UUID (36 characters) or a base32 UUID
(26 characters). Exits non-zero when any value is invalid.`,
	Example: `  nominal check 01h2xcf9jef98r8f243b8xkjy6 not-a-uuid`,
	RunE:    runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkOne(s string) CheckResult {
	r := CheckResult{Input: s}
	switch len(s) {
	case uuid32.HexLen:
		r.Form = FormHex
	case uuid32.EncodedLen:
		r.Form = FormBase32
	}
	if _, err := uuid32.Normalize(s); err != nil {
		r.Error = err.Error()
		return r
	}
	r.Valid = true
	return r
}

func runCheck(cmd *cobra.Command, args []string) error {
	values, err := inputs(cmd, args)
	if err != nil {
		return err
	}

	results := make([]CheckResult, len(values))
	invalid := 0
	for i, v := range values {
		results[i] = checkOne(v)
		if !results[i].Valid {
			invalid++
		}
	}

	err = output.Render(cmd.OutOrStdout(), outputFormat(), results, func(w io.Writer) error {
		tw := output.Table(w)
		fmt.Fprintln(tw, "INPUT\tFORM\tVALID")
		for _, r := range results {
			form := r.Form
			if form == "" {
				form = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%t\n", r.Input, form, r.Valid)
		}
		return tw.Flush()
	})
	if err != nil {
		return err
	}
	if invalid > 0 {
		return &InvalidInputsError{Invalid: invalid, Total: len(values)}
	}
	return nil
}
