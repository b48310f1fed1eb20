// Package frame implements the keyfile container: a fixed header naming the
// payload format and pinning its exact length.
//
//	magic(4) | ver(1) | format(1) | plen(u32 be) | payload(plen)
//
// Decoding is strict. Wrong magic, unknown version, zero format byte, a
// length that disagrees with the buffer, or trailing bytes all fail with
// ErrCorrupt.
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version    byte = 1
	headerSize      = 4 + 1 + 1 + 4
)

// Format names the payload serialization inside a container. Zero is
// reserved so an all-zero header can never pass validation.
type Format byte

const (
	FormatJSON    Format = 1
	FormatCBOR    Format = 2
	FormatMsgpack Format = 3
)

var (
	ErrCorrupt = errors.New("keyfile: corrupt container")
	magic4     = [...]byte{'N', 'I', 'C', 'E'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Encode wraps payload in a container header.
func Encode(f Format, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(headerSize + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(byte(f))

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode validates the header and returns the format and payload. The
// payload is a zero-copy slice into b.
func Decode(b []byte) (Format, []byte, error) {
	if len(b) < headerSize || !hasMagic(b) || b[4] != version {
		return 0, nil, ErrCorrupt
	}
	f := Format(b[5])
	if f == 0 {
		return 0, nil, ErrCorrupt
	}

	plen := int(binary.BigEndian.Uint32(b[6:10]))
	if plen < 0 || plen != len(b)-headerSize { // strict: no trailing bytes
		return 0, nil, ErrCorrupt
	}
	return f, b[headerSize : headerSize+plen], nil
}
