package sqlfunc

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/getmockd/nominal/internal/fixtures"
	"github.com/getmockd/nominal/pkg/logging"
)

const dropSQL = `DROP TABLE IF EXISTS test_cases`

const schemaSQL = `
CREATE TABLE test_cases (
    test_set     TEXT NOT NULL,
    uuid_lower   TEXT NOT NULL,
    uuid_upper   TEXT NOT NULL,
    uuid_mixed   TEXT NOT NULL,
    base32_lower TEXT NOT NULL,
    base32_upper TEXT NOT NULL,
    base32_mixed TEXT NOT NULL
)
`

const insertSQL = `
INSERT INTO test_cases (test_set, uuid_lower, uuid_upper, uuid_mixed, base32_lower, base32_upper, base32_mixed)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

// mismatchSQL selects every row where any permutation fails to encode,
// decode or round-trip to the lowercase forms.
const mismatchSQL = `
SELECT test_set, uuid_lower, base32_lower
FROM test_cases
WHERE uuid_to_base32(uuid_lower) IS NOT base32_lower
   OR uuid_to_base32(uuid_upper) IS NOT base32_lower
   OR uuid_to_base32(uuid_mixed) IS NOT base32_lower
   OR base32_to_uuid(base32_lower) IS NOT uuid_lower
   OR base32_to_uuid(base32_upper) IS NOT uuid_lower
   OR base32_to_uuid(base32_mixed) IS NOT uuid_lower
   OR base32_to_uuid(uuid_to_base32(uuid_lower)) IS NOT uuid_lower
   OR base32_to_uuid(uuid_to_base32(uuid_upper)) IS NOT uuid_lower
   OR base32_to_uuid(uuid_to_base32(uuid_mixed)) IS NOT uuid_lower
   OR is_base32_uuid(base32_mixed) IS NOT 1
ORDER BY test_set, uuid_lower
`

// Mismatch is a fixture row the SQL functions disagree with.
type Mismatch struct {
	TestSet string `json:"testSet" yaml:"testSet"`
	UUID    string `json:"uuid" yaml:"uuid"`
	Base32  string `json:"base32" yaml:"base32"`
}

// Report summarizes a verification run.
type Report struct {
	Rows       map[string]int `json:"rows" yaml:"rows"`
	Total      int            `json:"total" yaml:"total"`
	Mismatches []Mismatch     `json:"mismatches" yaml:"mismatches"`
	Duration   time.Duration  `json:"duration" yaml:"duration"`
}

// OK reports whether every row verified.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }

// Verifier checks the SQL functions against fixture corpora.
type Verifier struct {
	DB     *sql.DB
	Logger *slog.Logger
}

// NewVerifier creates a Verifier. A nil logger discards output.
func NewVerifier(db *sql.DB, logger *slog.Logger) *Verifier {
	return &Verifier{DB: db, Logger: logging.OrNop(logger)}
}

func (v *Verifier) log() *slog.Logger { return logging.OrNop(v.Logger) }

// Setup recreates the test_cases table.
func (v *Verifier) Setup(ctx context.Context) error {
	if v == nil || v.DB == nil {
		return fmt.Errorf("verifier database is not configured")
	}
	if _, err := v.DB.ExecContext(ctx, dropSQL); err != nil {
		return fmt.Errorf("drop test_cases: %w", err)
	}
	if _, err := v.DB.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create test_cases: %w", err)
	}
	return nil
}

// Load inserts one row per pair, with lower, upper and mixed case variants
// of both the hex and base32 forms.
func (v *Verifier) Load(ctx context.Context, set string, pairs []fixtures.Pair) error {
	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load %s: %w", set, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pairs {
		hex := strings.ToLower(p.Hex)
		b32 := strings.ToLower(p.Base32)
		if _, err := stmt.ExecContext(ctx, set,
			hex, strings.ToUpper(hex), fixtures.MixedCase(hex),
			b32, strings.ToUpper(b32), fixtures.MixedCase(b32),
		); err != nil {
			return fmt.Errorf("insert %s/%s: %w", set, hex, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load %s: %w", set, err)
	}
	v.log().Debug("loaded test cases", "test_set", set, "rows", len(pairs))
	return nil
}

// Count returns the number of rows per test set.
func (v *Verifier) Count(ctx context.Context) (map[string]int, error) {
	rows, err := v.DB.QueryContext(ctx, `SELECT test_set, COUNT(*) FROM test_cases GROUP BY test_set`)
	if err != nil {
		return nil, fmt.Errorf("count test cases: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			set string
			n   int
		)
		if err := rows.Scan(&set, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[set] = n
	}
	return counts, rows.Err()
}

// Mismatches runs the validation query and returns the failing rows.
func (v *Verifier) Mismatches(ctx context.Context) ([]Mismatch, error) {
	rows, err := v.DB.QueryContext(ctx, mismatchSQL)
	if err != nil {
		return nil, fmt.Errorf("validate conversions: %w", err)
	}
	defer rows.Close()

	var out []Mismatch
	for rows.Next() {
		var m Mismatch
		if err := rows.Scan(&m.TestSet, &m.UUID, &m.Base32); err != nil {
			return nil, fmt.Errorf("scan mismatch: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("validate conversions: %w", err)
	}
	return out, nil
}

// VerifyAll recreates the table, loads the corpora concurrently and runs the
// validation query.
func (v *Verifier) VerifyAll(ctx context.Context, corpora []fixtures.Corpus) (*Report, error) {
	start := time.Now()
	if err := v.Setup(ctx); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range corpora {
		g.Go(func() error { return v.Load(gctx, c.Name, c.Pairs) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts, err := v.Count(ctx)
	if err != nil {
		return nil, err
	}
	mismatches, err := v.Mismatches(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Rows: counts, Mismatches: mismatches, Duration: time.Since(start)}
	for _, n := range counts {
		report.Total += n
	}
	v.log().Info("verified test cases",
		"rows", report.Total,
		"mismatches", len(mismatches),
		"duration", report.Duration,
	)
	return report, nil
}
