// Package uuid32 converts 128-bit UUIDs to and from a fixed-length,
// case-insensitive, order-preserving base32 text form.
//
// Three representations are supported:
//
//   - Binary: uuid.UUID, 16 bytes big-endian
//   - Hex: 36-character hyphenated form (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)
//   - Base32: 26 characters from Crockford's alphabet
//
// # Encoding
//
// The 128 data bits are treated as the low bits of a 130-bit field, which is
// split into 26 groups of 5 bits, most significant first. Each group indexes
// into Crockford's alphabet (0-9 and a-z without i, l, o, u). Encoders always
// emit lowercase; decoders accept any letter case.
//
// Because of the two leading pad bits the first symbol can only take the
// values 0-7. Decoding a string whose first symbol is 8 or higher fails with
// ErrFormat instead of silently dropping bits.
//
// The encoding preserves byte order: sorting base32 strings sorts the UUIDs
// they encode. Time-ordered UUIDs (v7) therefore stay time-ordered.
//
// # Usage
//
//	s, err := uuid32.HexToBase32("0188bac7-a64e-7a51-843c-441ad1d9cbc6")
//	// s == "01h2xcf9jef98r8f243b8xkjy6"
//
//	u, err := uuid32.Decode("01H2XCF9JEF98R8F243B8XKJY6")
//	fmt.Println(uuid32.FormatHex(u))
package uuid32
