// Package wordlist holds the embedded 65536-entry word list and its lookup
// structures. One entry exists for every 16-bit value, so an index is a
// uint16 and every uint16 is a valid index.
//
// The list ships inside the binary and never changes at runtime. Entries are
// lowercase ASCII, unique, and sorted ascending; the asset is validated at
// load time rather than trusted.
package wordlist

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "embed"
)

// Size is the number of entries: one for every 16-bit value.
const Size = 1 << 16

// ErrMalformed reports an embedded asset that fails the integrity check.
// Seeing it means the binary was built from a bad words.txt.
var ErrMalformed = errors.New("wordlist: malformed word list")

//go:embed words.txt
var raw string

// List is an immutable word list with O(1) lookup in both directions.
// Safe for concurrent use.
type List struct {
	words  []string
	index  map[string]uint16
	maxLen int
}

var (
	once sync.Once
	std  *List
)

// Default returns the shared List built from the embedded asset. The first
// call builds it; later calls return the same pointer. It panics if the
// asset is malformed, which only a broken build can cause. Use Load to get
// the error instead.
func Default() *List {
	once.Do(func() {
		l, err := Load()
		if err != nil {
			panic(err)
		}
		std = l
	})
	return std
}

// Load builds a List from the embedded asset, verifying entry count,
// uniqueness and charset.
func Load() (*List, error) {
	return parse(raw)
}

func parse(data string) (*List, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) != Size {
		return nil, fmt.Errorf("%w: %d entries, want %d", ErrMalformed, len(lines), Size)
	}
	l := &List{
		words: lines,
		index: make(map[string]uint16, Size),
	}
	for i, w := range lines {
		if !validEntry(w) {
			return nil, fmt.Errorf("%w: bad entry %q at line %d", ErrMalformed, w, i+1)
		}
		if _, dup := l.index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate entry %q", ErrMalformed, w)
		}
		l.index[w] = uint16(i)
		if len(w) > l.maxLen {
			l.maxLen = len(w)
		}
	}
	return l, nil
}

// validEntry accepts non-empty lowercase ASCII, nothing else. A duplicate or
// a stray charset would make the index<->word mapping ambiguous.
func validEntry(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Word returns the entry at index i. Total: every uint16 is in range.
func (l *List) Word(i uint16) string {
	return l.words[i]
}

// Index returns the position of w. Matching is exact: no case folding, no
// trimming. The length check skips the map for anything longer than the
// longest entry.
func (l *List) Index(w string) (uint16, bool) {
	if len(w) > l.maxLen {
		return 0, false
	}
	i, ok := l.index[w]
	return i, ok
}

// Len returns Size. Handy for callers that do not want to import the const.
func (l *List) Len() int {
	return len(l.words)
}

// MaxWordLen returns the length of the longest entry.
func (l *List) MaxWordLen() int {
	return l.maxLen
}
