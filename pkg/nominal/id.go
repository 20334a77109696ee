package nominal

import (
	"database/sql/driver"
	"encoding/json"
	"math/big"
	"reflect"

	"github.com/getmockd/nominal/internal/intern"
)

var idKinds = newRegistry()

// cacheKey is the interning key. Bound kinds leave tag empty since it is
// implied by the kind; untagged kinds carry the ad hoc tag alongside the key,
// so no (tag, key) pair can collide with another.
type cacheKey struct {
	tag string
	key Key
}

// Kind produces interned identifiers of type *ID[M].
type Kind[M any] struct {
	meta
	cache *intern.Cache[cacheKey, ID[M]]
}

// Bind returns the kind for marker type M with the given tag. An empty tag
// yields an untagged kind. Binding M a second time to the same tag returns
// the same kind; binding it to a different tag fails with ErrAlreadyBound.
func Bind[M any](tag string) (*Kind[M], error) {
	return bind(idKinds, reflect.TypeFor[M](), "Id", tag,
		func(m meta) *Kind[M] {
			return &Kind[M]{meta: m, cache: intern.New[cacheKey, ID[M]]()}
		},
		func(k *Kind[M]) meta { return k.meta })
}

// MustBind is like Bind but panics on error. It simplifies package-level
// kind declarations.
func MustBind[M any](tag string) *Kind[M] {
	k, err := Bind[M](tag)
	if err != nil {
		panic(err)
	}
	return k
}

// From returns the identifier for a string key.
func (k *Kind[M]) From(key string) *ID[M] { return k.get(StringKey(key), k.tag) }

// FromInt returns the identifier for an integer key.
func (k *Kind[M]) FromInt(n int64) *ID[M] { return k.get(IntKey(n), k.tag) }

// FromBig returns the identifier for an arbitrary-precision integer key.
func (k *Kind[M]) FromBig(n *big.Int) *ID[M] { return k.get(BigKey(n), k.tag) }

// FromKey returns the identifier for key.
func (k *Kind[M]) FromKey(key Key) *ID[M] { return k.get(key, k.tag) }

// FromWithTag returns the identifier for key with an ad hoc tag. Bound kinds
// ignore tag and use their own.
func (k *Kind[M]) FromWithTag(key, tag string) *ID[M] {
	return k.FromKeyWithTag(StringKey(key), tag)
}

// FromKeyWithTag is FromWithTag for an arbitrary key.
func (k *Kind[M]) FromKeyWithTag(key Key, tag string) *ID[M] {
	if k.bound() {
		tag = k.tag
	}
	return k.get(key, tag)
}

// FromTagged parses the display form produced by String. For bound kinds the
// text must be "<tag>_<key>" with the kind's tag; otherwise it fails with
// ErrTagMismatch. Untagged kinds take the whole text as the key.
func (k *Kind[M]) FromTagged(text string) (*ID[M], error) {
	key, err := splitTagged(text, k.tag)
	if err != nil {
		return nil, err
	}
	return k.get(StringKey(key), k.tag), nil
}

// Len returns the number of cache slots held by the kind.
func (k *Kind[M]) Len() int { return k.cache.Len() }

// Stats returns the kind's cache counters.
func (k *Kind[M]) Stats() intern.Stats { return k.cache.Stats() }

func (k *Kind[M]) get(key Key, tag string) *ID[M] {
	ck := cacheKey{key: key}
	if !k.bound() {
		ck.tag = tag
	}
	return k.cache.GetOrCreate(ck, func() *ID[M] {
		return &ID[M]{key: key, tag: tag, kind: k}
	})
}

// ID is an interned identifier of kind M. IDs are immutable and are only
// obtainable from a Kind, so two IDs are equal exactly when they are the
// same pointer.
type ID[M any] struct {
	key  Key
	tag  string
	kind *Kind[M]
}

// Key returns the raw key.
func (id *ID[M]) Key() Key { return id.key }

// Tag returns the tag, or "" if the identifier has none.
func (id *ID[M]) Tag() string { return id.tag }

// Kind returns the kind that produced id.
func (id *ID[M]) Kind() *Kind[M] { return id.kind }

// String returns "<tag>_<key>", or the key alone when there is no tag.
func (id *ID[M]) String() string { return display(id.tag, id.key.String()) }

// GoString returns the kind name and display form, e.g. Id<user>(user_123).
func (id *ID[M]) GoString() string {
	name := "Id"
	if id.kind != nil {
		name = id.kind.name
	}
	return name + "(" + id.String() + ")"
}

// Raw returns the key text without the tag.
func (id *ID[M]) Raw() string { return id.key.String() }

// Value implements driver.Valuer with the raw key.
func (id *ID[M]) Value() (driver.Value, error) { return id.key.Value() }

// MarshalText implements encoding.TextMarshaler.
func (id *ID[M]) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// MarshalJSON encodes id as its display string.
func (id *ID[M]) MarshalJSON() ([]byte, error) { return json.Marshal(id.String()) }
