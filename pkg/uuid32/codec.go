package uuid32

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Alphabet is Crockford's base32 alphabet in canonical (lowercase) form.
const Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const (
	// EncodedLen is the length of a base32 UUID.
	EncodedLen = 26
	// HexLen is the length of a hyphenated hex UUID.
	HexLen = 36

	// maxLeading is the largest value the first symbol may encode.
	maxLeading = 7
	invalid    = 0xFF
)

// dec maps an input byte to its 5-bit value, or invalid.
var dec [256]byte

func init() {
	for i := range dec {
		dec[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		dec[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			dec[c-'a'+'A'] = byte(i)
		}
	}
}

// Encode returns the 26-character lowercase base32 form of u.
func Encode(u uuid.UUID) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen), u))
}

// AppendEncode appends the base32 form of u to dst and returns the extended buffer.
func AppendEncode(dst []byte, u uuid.UUID) []byte {
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])

	var out [EncodedLen]byte
	for i := EncodedLen - 1; i >= 0; i-- {
		out[i] = Alphabet[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return append(dst, out[:]...)
}

// Decode parses a 26-character base32 UUID in any letter case.
func Decode(s string) (uuid.UUID, error) {
	if len(s) != EncodedLen {
		return uuid.Nil, &FormatError{Input: s, Reason: "base32 UUID must be 26 characters"}
	}

	var hi, lo uint64
	for i := 0; i < EncodedLen; i++ {
		v := dec[s[i]]
		if v == invalid {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return uuid.Nil, &InvalidCharacterError{Input: s, Char: r, Pos: i}
		}
		if i == 0 && v > maxLeading {
			return uuid.Nil, &FormatError{Input: s, Reason: "overflow"}
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(v)
	}

	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], hi)
	binary.BigEndian.PutUint64(u[8:], lo)
	return u, nil
}

// IsBase32 reports whether s is a valid base32 UUID: 26 alphabet symbols in
// any case with a leading symbol no greater than 7.
func IsBase32(s string) bool {
	if len(s) != EncodedLen || dec[s[0]] > maxLeading {
		return false
	}
	for i := 1; i < EncodedLen; i++ {
		if dec[s[i]] == invalid {
			return false
		}
	}
	return true
}

// ParseHex parses a 36-character hyphenated hex UUID in any letter case.
// Other forms accepted by uuid.Parse (braces, urn prefix, bare hex) are rejected.
func ParseHex(s string) (uuid.UUID, error) {
	if len(s) != HexLen {
		return uuid.Nil, &FormatError{Input: s, Reason: "hex UUID must be 36 characters"}
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &FormatError{Input: s, Reason: err.Error()}
	}
	return u, nil
}

// FormatHex returns the 36-character lowercase hyphenated form of u.
func FormatHex(u uuid.UUID) string {
	return u.String()
}

// IsHex reports whether s is a 36-character hyphenated hex UUID.
func IsHex(s string) bool {
	return len(s) == HexLen && uuid.Validate(s) == nil
}

// Normalize parses s as either a hex UUID (36 characters) or a base32 UUID
// (26 characters). Any other length fails with ErrFormat.
func Normalize(s string) (uuid.UUID, error) {
	switch len(s) {
	case HexLen:
		return ParseHex(s)
	case EncodedLen:
		return Decode(s)
	default:
		return uuid.Nil, &FormatError{Input: s, Reason: "expected 36-character hex or 26-character base32"}
	}
}

// HexToBase32 converts a hyphenated hex UUID to its base32 form.
func HexToBase32(hex string) (string, error) {
	u, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Encode(u), nil
}

// Base32ToHex converts a base32 UUID to its lowercase hyphenated hex form.
func Base32ToHex(s string) (string, error) {
	u, err := Decode(s)
	if err != nil {
		return "", err
	}
	return FormatHex(u), nil
}
