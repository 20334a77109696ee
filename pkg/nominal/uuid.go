package nominal

import (
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"sync"

	"github.com/getmockd/nominal/internal/intern"
	"github.com/getmockd/nominal/pkg/uuid32"
	"github.com/google/uuid"
)

var uuidKinds = newRegistry()

type uuidCacheKey struct {
	tag string
	hex string
}

// UUIDKind produces interned UUID identifiers of type *UUID[M].
type UUIDKind[M any] struct {
	meta
	cache *intern.Cache[uuidCacheKey, UUID[M]]
}

// BindUUID returns the UUID kind for marker type M with the given tag. It
// follows the same rules as Bind.
func BindUUID[M any](tag string) (*UUIDKind[M], error) {
	return bind(uuidKinds, reflect.TypeFor[M](), "Uuid", tag,
		func(m meta) *UUIDKind[M] {
			return &UUIDKind[M]{meta: m, cache: intern.New[uuidCacheKey, UUID[M]]()}
		},
		func(k *UUIDKind[M]) meta { return k.meta })
}

// MustBindUUID is like BindUUID but panics on error.
func MustBindUUID[M any](tag string) *UUIDKind[M] {
	k, err := BindUUID[M](tag)
	if err != nil {
		panic(err)
	}
	return k
}

// From returns the identifier for s, which must be a 36-character hyphenated
// hex UUID or a 26-character base32 UUID, in any letter case. Other input
// fails with ErrFormat or ErrInvalidCharacter.
func (k *UUIDKind[M]) From(s string) (*UUID[M], error) {
	return k.FromWithTag(s, k.tag)
}

// MustFrom is like From but panics on error.
func (k *UUIDKind[M]) MustFrom(s string) *UUID[M] {
	id, err := k.From(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromWithTag is From with an ad hoc tag. Bound kinds ignore tag.
func (k *UUIDKind[M]) FromWithTag(s, tag string) (*UUID[M], error) {
	u, err := uuid32.Normalize(s)
	if err != nil {
		return nil, err
	}
	return k.get(uuid32.FormatHex(u), tag), nil
}

// FromUUID returns the identifier for u.
func (k *UUIDKind[M]) FromUUID(u uuid.UUID) *UUID[M] {
	return k.get(uuid32.FormatHex(u), k.tag)
}

// FromLowerHex returns the identifier for a value already known to be a
// canonical lowercase hyphenated hex UUID, such as one read back from a
// database uuid column. The input is not validated.
func (k *UUIDKind[M]) FromLowerHex(hex string) *UUID[M] {
	return k.get(hex, k.tag)
}

// FromTagged parses the display form produced by String, e.g.
// "user_01h2xcf9jef98r8f243b8xkjy6". See Kind.FromTagged for tag rules.
func (k *UUIDKind[M]) FromTagged(text string) (*UUID[M], error) {
	key, err := splitTagged(text, k.tag)
	if err != nil {
		return nil, err
	}
	return k.From(key)
}

// Len returns the number of cache slots held by the kind.
func (k *UUIDKind[M]) Len() int { return k.cache.Len() }

// Stats returns the kind's cache counters.
func (k *UUIDKind[M]) Stats() intern.Stats { return k.cache.Stats() }

func (k *UUIDKind[M]) get(hex, tag string) *UUID[M] {
	if k.bound() {
		tag = k.tag
	}
	ck := uuidCacheKey{hex: hex}
	if !k.bound() {
		ck.tag = tag
	}
	return k.cache.GetOrCreate(ck, func() *UUID[M] { return newUUID(k, hex, tag) })
}

// UUID is an interned UUID identifier of kind M. Its key is the canonical
// lowercase hex form; the base32 form is derived on first use.
type UUID[M any] struct {
	hex  string
	tag  string
	kind *UUIDKind[M]

	bin    func() uuid.UUID
	base32 func() string
}

func newUUID[M any](k *UUIDKind[M], hex, tag string) *UUID[M] {
	id := &UUID[M]{hex: hex, tag: tag, kind: k}
	id.bin = sync.OnceValue(func() uuid.UUID {
		u, _ := uuid.Parse(hex)
		return u
	})
	id.base32 = sync.OnceValue(func() string { return uuid32.Encode(id.bin()) })
	return id
}

// Key returns the canonical lowercase hex form.
func (id *UUID[M]) Key() string { return id.hex }

// Hex returns the canonical lowercase hex form.
func (id *UUID[M]) Hex() string { return id.hex }

// Base32 returns the 26-character lowercase base32 form. It is computed once.
func (id *UUID[M]) Base32() string { return id.base32() }

// UUID returns the binary value.
func (id *UUID[M]) UUID() uuid.UUID { return id.bin() }

// Tag returns the tag, or "" if the identifier has none.
func (id *UUID[M]) Tag() string { return id.tag }

// Kind returns the kind that produced id.
func (id *UUID[M]) Kind() *UUIDKind[M] { return id.kind }

// String returns the base32 form, prefixed with "<tag>_" when tagged.
func (id *UUID[M]) String() string { return display(id.tag, id.Base32()) }

// GoString returns the kind name and display form.
func (id *UUID[M]) GoString() string {
	name := "Uuid"
	if id.kind != nil {
		name = id.kind.name
	}
	return name + "(" + id.String() + ")"
}

// Raw returns the hex form without the tag.
func (id *UUID[M]) Raw() string { return id.hex }

// Value implements driver.Valuer with the hex form.
func (id *UUID[M]) Value() (driver.Value, error) { return id.hex, nil }

// MarshalText implements encoding.TextMarshaler.
func (id *UUID[M]) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// MarshalJSON encodes id as its display string.
func (id *UUID[M]) MarshalJSON() ([]byte, error) { return json.Marshal(id.String()) }
