package niceware

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/healeycodes/niceware/wordlist"
)

// MaxPassphraseWords caps GeneratePassphrase. 512 words is 1024 bytes of
// entropy, far beyond any practical key size.
const MaxPassphraseWords = 512

// BytesToPassphrase maps every two bytes of b to one word. Pairs are read
// big-endian, so the first byte selects the high bits of the word index.
// The input must have even length; empty input yields an empty passphrase.
// The result has exactly len(b)/2 words and round-trips through
// PassphraseToBytes.
func BytesToPassphrase(b []byte) ([]string, error) {
	if len(b)%2 != 0 {
		return nil, &OddLengthError{Size: len(b)}
	}
	list := wordlist.Default()
	words := make([]string, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		words = append(words, list.Word(binary.BigEndian.Uint16(b[i:i+2])))
	}
	return words, nil
}

// PassphraseToBytes inverts BytesToPassphrase. Words must match list entries
// exactly; use ParsePassphrase for anything a human typed. The first unknown
// word aborts the decode and no bytes are returned.
func PassphraseToBytes(words []string) ([]byte, error) {
	list := wordlist.Default()
	b := make([]byte, 2*len(words))
	for i, w := range words {
		idx, ok := list.Index(w)
		if !ok {
			return nil, &InvalidWordError{Word: w, Position: i}
		}
		binary.BigEndian.PutUint16(b[2*i:], idx)
	}
	return b, nil
}

// GeneratePassphrase returns numWords random words, 16 bits of entropy each,
// read from crypto/rand. numWords must be in [0, MaxPassphraseWords].
func GeneratePassphrase(numWords int) ([]string, error) {
	if numWords < 0 || numWords > MaxPassphraseWords {
		return nil, &WordCountError{Count: numWords}
	}
	b := make([]byte, 2*numWords)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("niceware: reading entropy: %w", err)
	}
	return BytesToPassphrase(b)
}

// ParsePassphrase decodes free-form input: s is split on whitespace and each
// word is lowercased before the exact-match decode. This is the only place
// any normalization happens.
func ParsePassphrase(s string) ([]byte, error) {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return PassphraseToBytes(words)
}
