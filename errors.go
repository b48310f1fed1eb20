package niceware

import (
	"fmt"
)

// OddLengthError reports input that cannot be encoded because every word
// carries two bytes. No padding is applied; the caller owns framing.
type OddLengthError struct {
	Size int // length of the rejected input
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("odd size not supported: %d", e.Size)
}

// InvalidWordError reports the first passphrase word that is not in the
// word list. Decoding is all-or-nothing, so nothing was produced.
type InvalidWordError struct {
	Word     string
	Position int // zero-based position within the passphrase
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("unknown word %q at position %d", e.Word, e.Position)
}

// WordCountError reports a GeneratePassphrase request outside
// [0, MaxPassphraseWords].
type WordCountError struct {
	Count int
}

func (e *WordCountError) Error() string {
	return fmt.Sprintf("number of words %d out of range [0, %d]", e.Count, MaxPassphraseWords)
}
