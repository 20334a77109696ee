package uuid32

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrFormat           = errors.New("invalid UUID format")
	ErrInvalidCharacter = errors.New("invalid base32 character")
)

// FormatError reports input that is neither a valid hyphenated hex UUID nor a
// valid base32 UUID.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid UUID format %q: %s", e.Input, e.Reason)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// InvalidCharacterError reports a base32 symbol outside the alphabet.
type InvalidCharacterError struct {
	Input string
	Char  rune
	Pos   int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base32 character %q at position %d in %q", e.Char, e.Pos, e.Input)
}

// Is reports whether target is ErrInvalidCharacter.
func (e *InvalidCharacterError) Is(target error) bool { return target == ErrInvalidCharacter }
