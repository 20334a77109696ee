// Package nominal provides interned, nominally-typed identifiers.
//
// An identifier is a raw key (a string or an arbitrary-precision integer)
// plus an optional tag. Identifiers of different kinds share a
// representation but are distinct Go types, so a user ID cannot be passed
// where a post ID is expected.
//
// # Kinds
//
// A kind is created by binding a tag to a marker type. The marker type is the
// identity of the kind: two markers bound to the same tag string give two
// unrelated types with separate caches.
//
//	type userMarker struct{}
//	type postMarker struct{}
//
//	var (
//	    Users = nominal.MustBind[userMarker]("user")
//	    Posts = nominal.MustBind[postMarker]("post")
//	)
//
//	u := Users.From("123") // *nominal.ID[userMarker], prints "user_123"
//	p := Posts.From("123") // *nominal.ID[postMarker], prints "post_123"
//
// A marker is bound once; binding it again to a different tag fails with
// ErrAlreadyBound. Binding to the empty tag gives an untagged kind with its
// own cache, on which callers may pass an ad hoc tag per identifier. The
// package-level From and FromTagged functions use the built-in untagged kind.
//
// # Interning
//
// Identifiers are only obtainable from a kind, and every kind routes
// construction through a weak identity cache. While a caller holds an
// identifier, requesting the same key again returns the same pointer, so
// identifiers compare with ==. Once unreachable, an identifier may be
// collected and a later request produces a new instance.
//
// # UUIDs
//
// UUID kinds (BindUUID) accept a 36-character hex UUID or a 26-character
// base32 UUID in any letter case. The key is always stored as lowercase
// hyphenated hex, and String returns the base32 form, computed once per
// instance:
//
//	type orderMarker struct{}
//	var Orders = nominal.MustBindUUID[orderMarker]("order")
//
//	o, err := Orders.From("0188bac7-a64e-7a51-843c-441ad1d9cbc6")
//	o.String() // "order_01h2xcf9jef98r8f243b8xkjy6"
//	o.Raw()    // "0188bac7-a64e-7a51-843c-441ad1d9cbc6"
//
// # Serialization
//
// String, MarshalText and MarshalJSON include the tag. Raw and Value (the
// database/sql/driver.Valuer) return only the key, for stores that track the
// tag out of band.
package nominal
