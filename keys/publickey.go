// Package keys implements the Mosaic core's Ed25519 identity primitives:
// PublicKey, SecretKey, and the scrypt-encrypted secret key container.
package keys

import (
	"crypto/ed25519"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/zbase32"
)

// Size is the packed byte length of a PublicKey or SecretKey.
const Size = ed25519.PublicKeySize // ed25519.PublicKeySize == ed25519.SeedSize == 32

// PublicKey is a 32-byte packed Ed25519 verifying key.
type PublicKey [Size]byte

// FromBytes parses a PublicKey from exactly 32 bytes.
//
// crypto/ed25519 doesn't expose a standalone point-decompression check: an
// off-curve or non-canonical encoding surfaces as a failed ed25519.Verify
// call rather than as a distinct error here. That's sufficient for this
// core's purposes, since the only place a PublicKey's validity actually
// matters is signature verification, which rejects it either way.
func NewPublicKey(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != Size {
		return pk, errs.At(errs.ErrKeyLength)
	}

	copy(pk[:], b)

	return pk, nil
}

// Bytes returns the packed 32-byte form.
func (pk PublicKey) Bytes() []byte {
	return pk[:]
}

// Ed25519 returns the stdlib ed25519.PublicKey view over the same bytes.
func (pk PublicKey) Ed25519() ed25519.PublicKey {
	return ed25519.PublicKey(pk[:])
}

// String renders the printable mopub0... form.
func (pk PublicKey) String() string {
	return zbase32.EncodeTyped(zbase32.PrefixPublicKey, pk[:])
}

// ParsePublicKey decodes a mopub0... printable PublicKey.
func ParsePublicKey(s string) (PublicKey, error) {
	b, err := zbase32.DecodeTyped(zbase32.PrefixPublicKey, s, Size)
	if err != nil {
		return PublicKey{}, err
	}

	return NewPublicKey(b)
}
