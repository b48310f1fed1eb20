// Package keyfile persists keys as small envelope files. An envelope wraps
// the raw bytes with a version, a creation timestamp and an optional
// comment, and goes to disk inside a strict container that names its own
// serialization format. A Store reads back files written in any supported
// format regardless of what it writes.
package keyfile

import (
	"time"

	"github.com/healeycodes/niceware"
)

// Version is stamped into every new File. Load rejects anything else.
const Version = 1

// File is the persisted envelope around a key.
type File struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Comment   string    `json:"comment,omitempty"`
	Key       []byte    `json:"key"`
}

// New wraps key in an envelope. The key must have even length so it can
// render as a passphrase; the bytes are copied.
func New(key []byte, comment string) (*File, error) {
	if len(key)%2 != 0 {
		return nil, &niceware.OddLengthError{Size: len(key)}
	}
	return &File{
		Version:   Version,
		CreatedAt: time.Now().UTC(),
		Comment:   comment,
		Key:       append([]byte(nil), key...),
	}, nil
}

// Passphrase renders the key as words.
func (f *File) Passphrase() ([]string, error) {
	return niceware.BytesToPassphrase(f.Key)
}
