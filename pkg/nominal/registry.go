package nominal

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Separator joins a tag and a key in the display form.
const Separator = "_"

// meta is the immutable description of a kind.
type meta struct {
	tag  string
	name string
}

// Tag returns the kind's fixed tag, or "" for an untagged kind.
func (m meta) Tag() string { return m.tag }

// Name returns a descriptive name such as "Id<user>".
func (m meta) Name() string { return m.name }

func (m meta) bound() bool { return m.tag != "" }

// registry maps marker types to the kind bound to them.
type registry struct {
	mu    sync.Mutex
	kinds map[reflect.Type]any
}

func newRegistry() *registry {
	return &registry{kinds: make(map[reflect.Type]any)}
}

// bind returns the kind registered for marker, creating it with build on
// first use. describe reads back the tag of an existing kind.
func bind[K any](r *registry, marker reflect.Type, family, tag string, build func(meta) *K, describe func(*K) meta) (*K, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.kinds[marker]; ok {
		k := existing.(*K)
		if got := describe(k).tag; got != tag {
			return nil, fmt.Errorf("%w: %s is bound to %q, cannot rebind to %q", ErrAlreadyBound, marker, got, tag)
		}
		return k, nil
	}

	k := build(meta{tag: tag, name: kindName(family, marker, tag)})
	r.kinds[marker] = k
	return k, nil
}

func kindName(family string, marker reflect.Type, tag string) string {
	switch {
	case tag != "":
		return family + "<" + tag + ">"
	case marker == reflect.TypeFor[baseMarker]():
		return family
	default:
		return marker.String()
	}
}

// splitTagged splits text on the last separator and checks the prefix
// against expected. An untagged kind takes the whole text as the key.
func splitTagged(text, expected string) (key string, err error) {
	if expected == "" {
		return text, nil
	}
	i := strings.LastIndex(text, Separator)
	if i < 0 || text[:i] != expected {
		return "", &TagMismatchError{Input: text, Expected: expected}
	}
	return text[i+len(Separator):], nil
}

func display(tag, value string) string {
	if tag == "" {
		return value
	}
	return tag + Separator + value
}
