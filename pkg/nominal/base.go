package nominal

import (
	"math/big"
	"strings"
)

// baseMarker identifies the built-in untagged kinds.
type baseMarker struct{}

// BaseID and BaseUUID are the identifier types of the built-in untagged kinds.
type (
	BaseID   = ID[baseMarker]
	BaseUUID = UUID[baseMarker]
)

var (
	// Base is the built-in untagged identifier kind.
	Base = MustBind[baseMarker]("")

	// UUIDs is the built-in untagged UUID kind.
	UUIDs = MustBindUUID[baseMarker]("")
)

// From returns the identifier for key with an optional ad hoc tag.
func From(key, tag string) *BaseID { return Base.FromWithTag(key, tag) }

// FromInt returns the identifier for an integer key with an optional ad hoc tag.
func FromInt(n int64, tag string) *BaseID { return Base.FromKeyWithTag(IntKey(n), tag) }

// FromBig returns the identifier for an arbitrary-precision key with an
// optional ad hoc tag.
func FromBig(n *big.Int, tag string) *BaseID { return Base.FromKeyWithTag(BigKey(n), tag) }

// FromTagged returns the untagged identifier whose key is the whole of text.
func FromTagged(text string) (*BaseID, error) { return Base.FromTagged(text) }

// ParseUUID returns the untagged UUID identifier for s.
func ParseUUID(s string) (*BaseUUID, error) { return UUIDs.From(s) }

// ParseUUIDWithTag returns the UUID identifier for s with an ad hoc tag.
func ParseUUIDWithTag(s, tag string) (*BaseUUID, error) { return UUIDs.FromWithTag(s, tag) }

// ParseTaggedUUID parses a display form such as "user_01h2xcf9jef98r8f243b8xkjy6"
// into an untagged-kind UUID carrying the prefix as its tag. Input without a
// separator is given tag. A non-empty tag must match the prefix when one is
// present.
func ParseTaggedUUID(text, tag string) (*BaseUUID, error) {
	i := strings.LastIndex(text, Separator)
	if i < 0 {
		return UUIDs.FromWithTag(text, tag)
	}
	prefix, key := text[:i], text[i+len(Separator):]
	if tag != "" && prefix != tag {
		return nil, &TagMismatchError{Input: text, Expected: tag}
	}
	return UUIDs.FromWithTag(key, prefix)
}
