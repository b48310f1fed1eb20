package codec

import "encoding/json"

// JSONCodec serializes values with encoding/json. The zero value is ready
// to use. This is the default keyfile format: self-describing and easy to
// inspect with standard tools.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSONCodec[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
