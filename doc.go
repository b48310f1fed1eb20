// Package niceware converts byte sequences to passphrases and back. Every
// two input bytes select one word from a fixed 65536-entry list, so each
// word carries exactly 16 bits and the mapping is reversible bit for bit.
// No compression, no checksums, no padding: odd-length input is an error.
//
// Components:
//   - BytesToPassphrase / PassphraseToBytes: the reversible pair.
//   - GeneratePassphrase: random passphrases from crypto/rand.
//   - ParsePassphrase: free-form user input (whitespace, mixed case).
//   - wordlist: the embedded list and its lookup structures.
//   - codec: pluggable value serializers (JSON, CBOR, Msgpack, Protobuf).
//   - keyfile: key envelopes persisted in a strict on-disk container.
//   - mnemonic: BIP39 bridge over the same byte representation.
//   - log/zap, log/slog, log/logrus: Logger adapters.
//
// Pairs are read big-endian: the first byte selects the high bits of the
// word index.
//
//	words, _ := niceware.BytesToPassphrase([]byte{0x0e, 0x42, 0x1b, 0x55, 0xfc, 0x55, 0xfa, 0xac})
//	// words = ["bacca", "cavort", "west", "volley"]
//
// An eight-word passphrase carries 128 bits, which makes a good key or a
// master passphrase. Word matching on decode is exact; route anything a
// human typed through ParsePassphrase instead.
package niceware
