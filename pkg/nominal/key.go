package nominal

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strconv"
)

// Key is the raw value of an identifier: either a string or an integer of
// arbitrary precision. Integer keys are stored in normalized decimal form, so
// equal numbers are equal keys however they were produced. A string key and
// an integer key are never equal, even when their text matches.
type Key struct {
	text    string
	numeric bool
}

// StringKey returns a string key.
func StringKey(s string) Key { return Key{text: s} }

// IntKey returns an integer key.
func IntKey(n int64) Key { return Key{text: strconv.FormatInt(n, 10), numeric: true} }

// BigKey returns an integer key. A nil n is treated as zero.
func BigKey(n *big.Int) Key {
	if n == nil {
		return IntKey(0)
	}
	return Key{text: n.String(), numeric: true}
}

// ParseIntKey parses decimal text into an integer key.
func ParseIntKey(s string) (Key, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Key{}, fmt.Errorf("invalid integer key %q", s)
	}
	return BigKey(n), nil
}

// String returns the key text.
func (k Key) String() string { return k.text }

// IsNumeric reports whether k is an integer key.
func (k Key) IsNumeric() bool { return k.numeric }

// Int returns the integer value of a numeric key.
func (k Key) Int() (*big.Int, bool) {
	if !k.numeric {
		return nil, false
	}
	return new(big.Int).SetString(k.text, 10)
}

// Value implements driver.Valuer. Integer keys that fit in an int64 are
// returned as int64; larger ones as their decimal text.
func (k Key) Value() (driver.Value, error) {
	if k.numeric {
		if n, err := strconv.ParseInt(k.text, 10, 64); err == nil {
			return n, nil
		}
	}
	return k.text, nil
}
