// Package fixtures provides the UUID/base32 pairings shared by the codec,
// identifier and SQL tests.
//
// Three corpora are embedded, each mapping a canonical lowercase hex UUID to
// its canonical lowercase base32 encoding:
//
//   - edge_cases: structurally significant values (nil, max, single bits,
//     byte-aligned runs, alternating patterns)
//   - random_uuids: random version 4 UUIDs
//   - uuidv7: time-ordered version 7 UUIDs
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed corpus/*.json
var corpusFS embed.FS

// Corpus names.
const (
	EdgeCases   = "edge_cases"
	RandomUUIDs = "random_uuids"
	UUIDv7      = "uuidv7"
)

var corpusFiles = map[string]string{
	EdgeCases:   "corpus/uuid-edge-cases.json",
	RandomUUIDs: "corpus/uuid-random.json",
	UUIDv7:      "corpus/uuid-v7.json",
}

// Pair is one hex/base32 pairing.
type Pair struct {
	Hex    string `json:"hex"`
	Base32 string `json:"base32"`
}

// Corpus is a named set of pairings, sorted by hex.
type Corpus struct {
	Name  string
	Pairs []Pair
}

// Load returns the named corpus.
func Load(name string) (Corpus, error) {
	path, ok := corpusFiles[name]
	if !ok {
		return Corpus{}, fmt.Errorf("unknown corpus %q", name)
	}
	data, err := corpusFS.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus %s: %w", name, err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Corpus{}, fmt.Errorf("decode corpus %s: %w", name, err)
	}

	pairs := make([]Pair, 0, len(raw))
	for hex, b32 := range raw {
		pairs = append(pairs, Pair{Hex: hex, Base32: b32})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Hex < pairs[j].Hex })
	return Corpus{Name: name, Pairs: pairs}, nil
}

// MustLoad is like Load but panics on error. The corpora are embedded, so a
// failure means the binary was built from a broken tree.
func MustLoad(name string) Corpus {
	c, err := Load(name)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every corpus in a stable order.
func All() []Corpus {
	return []Corpus{MustLoad(EdgeCases), MustLoad(RandomUUIDs), MustLoad(UUIDv7)}
}

// MixedCase alternates lower and upper case, starting with lower case at index 0.
func MixedCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		if i%2 == 0 {
			b.WriteString(strings.ToLower(string(r)))
		} else {
			b.WriteString(strings.ToUpper(string(r)))
		}
	}
	return b.String()
}

// Permutations returns s in lower, upper and mixed case.
func Permutations(s string) []string {
	return []string{strings.ToLower(s), strings.ToUpper(s), MixedCase(s)}
}
