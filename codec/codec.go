// Package codec provides pluggable value serializers. The keyfile package
// uses them to persist key envelopes; they are exported because callers
// storing niceware material elsewhere need the same choice of wire formats.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
