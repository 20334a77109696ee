package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// inputs returns args, or the non-blank lines of stdin when there are none
// or the single argument is "-".
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}
	values, err := readLines(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNoInput
	}
	return values, nil
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}
