package mnemonic

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/healeycodes/niceware"
)

// the standard test sentence for sixteen zero bytes
const zeroMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestFromBytesKnownVector(t *testing.T) {
	m, err := FromBytes(make([]byte, 16))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if m != zeroMnemonic {
		t.Fatalf("got %q want %q", m, zeroMnemonic)
	}
}

func TestBytesFromInverse(t *testing.T) {
	b, err := BytesFrom(zeroMnemonic)
	if err != nil {
		t.Fatalf("BytesFrom: %v", err)
	}
	if !bytes.Equal(b, make([]byte, 16)) {
		t.Fatalf("got %x, want sixteen zero bytes", b)
	}
}

func TestPassphraseBridge(t *testing.T) {
	// sixteen zero bytes are "a" eight times on the niceware side
	words, err := ToPassphrase(zeroMnemonic)
	if err != nil {
		t.Fatalf("ToPassphrase: %v", err)
	}
	want := []string{"a", "a", "a", "a", "a", "a", "a", "a"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("got %q want %q", words, want)
	}

	m, err := FromPassphrase(want)
	if err != nil {
		t.Fatalf("FromPassphrase: %v", err)
	}
	if m != zeroMnemonic {
		t.Fatalf("got %q want %q", m, zeroMnemonic)
	}
}

func TestRoundTripSizes(t *testing.T) {
	for _, n := range []int{16, 20, 24, 28, 32} {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(i * 13)
		}
		m, err := FromBytes(in)
		if err != nil {
			t.Fatalf("size %d: FromBytes: %v", n, err)
		}
		if !Valid(m) {
			t.Fatalf("size %d: mnemonic not valid", n)
		}
		out, err := BytesFrom(m)
		if err != nil {
			t.Fatalf("size %d: BytesFrom: %v", n, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("size %d: round trip mismatch", n)
		}
	}
}

func TestRejectsBadSizes(t *testing.T) {
	for _, n := range []int{0, 2, 8, 17, 34} {
		if _, err := FromBytes(make([]byte, n)); err == nil {
			t.Fatalf("size %d: expected error", n)
		}
	}
	// two bytes decode fine as a passphrase but are too small for BIP39
	if _, err := FromPassphrase([]string{"bacca"}); err == nil {
		t.Fatalf("expected error for one-word passphrase")
	}
}

func TestRejectsBadChecksum(t *testing.T) {
	m := strings.Replace(zeroMnemonic, "about", "abandon", 1)
	if Valid(m) {
		t.Fatalf("expected invalid checksum")
	}
	if _, err := BytesFrom(m); err == nil {
		t.Fatalf("expected error on bad checksum")
	}
	if _, err := ToPassphrase(m); err == nil {
		t.Fatalf("expected error on bad checksum")
	}
}

func TestUnknownWordPropagates(t *testing.T) {
	_, err := FromPassphrase([]string{"bacca", "ninetales"})
	var invErr *niceware.InvalidWordError
	if !errors.As(err, &invErr) {
		t.Fatalf("got %v, want InvalidWordError", err)
	}
	if invErr.Position != 1 {
		t.Fatalf("error reports position %d", invErr.Position)
	}
}
