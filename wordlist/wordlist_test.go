package wordlist

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *List {
	t.Helper()
	l, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return l
}

// synthWords returns n distinct lowercase entries, sorted ascending.
func synthWords(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string([]byte{
			'a' + byte((i/(26*26*26))%26),
			'a' + byte((i/(26*26))%26),
			'a' + byte((i/26)%26),
			'a' + byte(i%26),
		})
	}
	return out
}

func TestLoadIntegrity(t *testing.T) {
	l := mustLoad(t)
	if l.Len() != Size {
		t.Fatalf("Len: got %d want %d", l.Len(), Size)
	}
	if w := l.Word(0); w != "a" {
		t.Fatalf("first entry: got %q want %q", w, "a")
	}
	if w := l.Word(Size - 1); w != "zyzzyva" {
		t.Fatalf("last entry: got %q want %q", w, "zyzzyva")
	}
	if !sort.StringsAreSorted(l.words) {
		t.Fatalf("entries are not sorted")
	}
}

func TestIndexWordBijection(t *testing.T) {
	l := mustLoad(t)
	for i := 0; i < Size; i++ {
		w := l.Word(uint16(i))
		got, ok := l.Index(w)
		if !ok {
			t.Fatalf("Index(%q) not found at %d", w, i)
		}
		if got != uint16(i) {
			t.Fatalf("Index(%q): got %d want %d", w, got, i)
		}
	}
}

func TestIndexKnownEntries(t *testing.T) {
	l := mustLoad(t)
	cases := []struct {
		word string
		idx  uint16
	}{
		{"a", 0x0000},
		{"abacus", 0x0001},
		{"bacca", 0x0e42},
		{"cavort", 0x1b55},
		{"depriving", 0x315e},
		{"volley", 0xfaac},
		{"west", 0xfc55},
		{"written", 0xff03},
		{"zyzzyva", 0xffff},
	}
	for _, tc := range cases {
		got, ok := l.Index(tc.word)
		if !ok {
			t.Fatalf("Index(%q) not found", tc.word)
		}
		if got != tc.idx {
			t.Fatalf("Index(%q): got %#04x want %#04x", tc.word, got, tc.idx)
		}
		if w := l.Word(tc.idx); w != tc.word {
			t.Fatalf("Word(%#04x): got %q want %q", tc.idx, w, tc.word)
		}
	}
}

func TestIndexExactMatchOnly(t *testing.T) {
	l := mustLoad(t)
	misses := []string{
		"",
		"Bacca",
		"BACCA",
		"bacca ",
		" bacca",
		"ninetales",
		strings.Repeat("z", l.MaxWordLen()+1),
	}
	for _, w := range misses {
		if _, ok := l.Index(w); ok {
			t.Fatalf("Index(%q) unexpectedly found", w)
		}
	}
}

func TestMaxWordLen(t *testing.T) {
	l := mustLoad(t)
	want := 0
	for _, w := range l.words {
		if len(w) > want {
			want = len(w)
		}
	}
	if l.MaxWordLen() != want {
		t.Fatalf("MaxWordLen: got %d want %d", l.MaxWordLen(), want)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	good := synthWords(Size)

	mut := func(f func([]string) []string) string {
		cp := append([]string(nil), good...)
		return strings.Join(f(cp), "\n") + "\n"
	}

	cases := []struct {
		name string
		data string
	}{
		{"too few entries", mut(func(w []string) []string { return w[:Size-1] })},
		{"too many entries", mut(func(w []string) []string { return append(w, "zzzzz") })},
		{"duplicate entry", mut(func(w []string) []string { w[1] = w[0]; return w })},
		{"empty entry", mut(func(w []string) []string { w[7] = ""; return w })},
		{"uppercase entry", mut(func(w []string) []string { w[9] = "Whale"; return w })},
		{"digit in entry", mut(func(w []string) []string { w[3] = "w0rd"; return w })},
		{"space in entry", mut(func(w []string) []string { w[5] = "two words"; return w })},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse(tc.data); !errors.Is(err, ErrMalformed) {
				t.Fatalf("parse: got %v, want ErrMalformed", err)
			}
		})
	}

	// the same synthetic data passes untouched
	if _, err := parse(strings.Join(good, "\n") + "\n"); err != nil {
		t.Fatalf("parse of valid data: %v", err)
	}
}

func TestDefaultShared(t *testing.T) {
	a, b := Default(), Default()
	if a != b {
		t.Fatalf("Default returned distinct lists")
	}
	if w := a.Word(0); w != "a" {
		t.Fatalf("Default list first entry: got %q", w)
	}
}
