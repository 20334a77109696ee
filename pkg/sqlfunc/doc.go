// Package sqlfunc exposes the base32 UUID codec to SQLite.
//
// Register installs three deterministic scalar functions in the
// modernc.org/sqlite driver:
//
//	uuid_to_base32(x)   -- x is a 16-byte blob or hex text in any case
//	base32_to_uuid(t)   -- returns canonical lowercase hex text
//	is_base32_uuid(t)   -- 1 when t is a valid 26-symbol encoding, else 0
//
// NULL arguments yield NULL. Malformed input fails the statement with the
// codec's error message.
//
// Verifier loads the fixture corpora into a test_cases table and checks every
// case permutation with a single validation query, so the SQL functions and the
// Go codec are held to the same vectors.
package sqlfunc
