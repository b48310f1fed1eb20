// Package mnemonic bridges niceware passphrases and BIP39 mnemonics. Both
// render raw bytes as words; BIP39 adds a checksum word and only accepts
// entropy of 16 to 32 bytes in 4-byte steps, so only those sizes cross the
// bridge. The byte representation is the meeting point: a niceware
// passphrase and a BIP39 mnemonic of the same bytes are interchangeable.
package mnemonic

import (
	"github.com/healeycodes/niceware"
	"github.com/tyler-smith/go-bip39"
)

// FromBytes renders entropy as a BIP39 mnemonic sentence. Entropy must be
// 16-32 bytes in 4-byte steps; bip39 enforces that.
func FromBytes(entropy []byte) (string, error) {
	return bip39.NewMnemonic(entropy)
}

// BytesFrom recovers the entropy behind a mnemonic sentence, verifying the
// BIP39 checksum.
func BytesFrom(m string) ([]byte, error) {
	return bip39.EntropyFromMnemonic(m)
}

// FromPassphrase re-renders a niceware passphrase as a BIP39 mnemonic.
func FromPassphrase(words []string) (string, error) {
	b, err := niceware.PassphraseToBytes(words)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(b)
}

// ToPassphrase re-renders a BIP39 mnemonic as a niceware passphrase.
func ToPassphrase(m string) ([]string, error) {
	b, err := bip39.EntropyFromMnemonic(m)
	if err != nil {
		return nil, err
	}
	return niceware.BytesToPassphrase(b)
}

// Valid reports whether m parses as a BIP39 mnemonic with a good checksum.
func Valid(m string) bool {
	return bip39.IsMnemonicValid(m)
}
