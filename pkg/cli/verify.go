package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/getmockd/nominal/internal/fixtures"
	"github.com/getmockd/nominal/pkg/cli/internal/output"
	"github.com/getmockd/nominal/pkg/sqlfunc"
)

var (
	verifyDB      string
	verifyCorpora []string
)

// ErrVerifyFailed is returned when the SQL functions disagree with a fixture.
var ErrVerifyFailed = errors.New("verification failed")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the SQLite conversion functions against the fixture corpora",
	Long: `Load the embedded fixture corpora, in lower, upper and mixed case, into a
SQLite test_cases table and check every row with the uuid_to_base32,
base32_to_uuid and is_base32_uuid functions in a single query.`,
	Example: `  nominal verify
  nominal verify --db /tmp/nominal.db --corpus uuidv7 -o json`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDB, "db", "", "SQLite database path (default :memory:)")
	verifyCmd.Flags().StringSliceVar(&verifyCorpora, "corpus", nil, "Corpora to load (default: all)")
	rootCmd.AddCommand(verifyCmd)
}

func selectCorpora(names []string) ([]fixtures.Corpus, error) {
	if len(names) == 0 {
		return fixtures.All(), nil
	}
	corpora := make([]fixtures.Corpus, 0, len(names))
	for _, name := range names {
		c, err := fixtures.Load(name)
		if err != nil {
			return nil, err
		}
		corpora = append(corpora, c)
	}
	return corpora, nil
}

func runVerify(cmd *cobra.Command, _ []string) error {
	corpora, err := selectCorpora(verifyCorpora)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := sqlfunc.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := sqlfunc.NewVerifier(db, logger).VerifyAll(ctx, corpora)
	if err != nil {
		return err
	}

	err = output.Render(cmd.OutOrStdout(), outputFormat(), report, func(w io.Writer) error {
		sets := make([]string, 0, len(report.Rows))
		for set := range report.Rows {
			sets = append(sets, set)
		}
		sort.Strings(sets)

		tw := output.Table(w)
		fmt.Fprintln(tw, "TEST SET\tROWS")
		for _, set := range sets {
			fmt.Fprintf(tw, "%s\t%d\n", set, report.Rows[set])
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		for _, m := range report.Mismatches {
			fmt.Fprintf(w, "MISMATCH %s %s %s\n", m.TestSet, m.UUID, m.Base32)
		}
		fmt.Fprintf(w, "%d rows, %d mismatches\n", report.Total, len(report.Mismatches))
		return nil
	})
	if err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%w: %d mismatches", ErrVerifyFailed, len(report.Mismatches))
	}
	return nil
}
