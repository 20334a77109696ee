// Package cli provides the command-line interface for nominal.
//
// Commands:
//   - encode: Convert hyphenated hex UUIDs to 26-character base32
//   - decode: Convert base32 UUIDs back to hyphenated hex
//   - check: Report whether inputs are valid hex or base32 UUIDs
//   - inspect: Show the tagged display form and derived fields of a UUID
//   - verify: Run the SQLite conversion functions against the fixture corpora
//   - config: Display effective configuration and where each value came from
//   - version: Show nominal version
//
// Every command honours --output (text, json or yaml). Logs go to stderr and
// are configured with --log-level and --log-format.
package cli
