package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/zbase32"
)

// SecretKey is a 32-byte Ed25519 signing seed. It never implements
// fmt.Stringer over its raw bytes; use the printable accessor explicitly
// only when the caller genuinely intends to export key material.
type SecretKey [Size]byte

// Generate draws a new SecretKey from a cryptographically secure source.
func Generate() (SecretKey, error) {
	var sk SecretKey
	if _, err := rand.Read(sk[:]); err != nil {
		return sk, err
	}

	return sk, nil
}

// NewSecretKey parses a SecretKey from exactly 32 bytes.
func NewSecretKey(b []byte) (SecretKey, error) {
	var sk SecretKey
	if len(b) != Size {
		return sk, errs.At(errs.ErrKeyLength)
	}

	copy(sk[:], b)

	return sk, nil
}

// Equal compares two SecretKeys in constant time.
func (sk SecretKey) Equal(other SecretKey) bool {
	return subtle.ConstantTimeCompare(sk[:], other[:]) == 1
}

// Bytes returns the packed 32-byte seed.
func (sk SecretKey) Bytes() []byte {
	return sk[:]
}

// PublicKey derives the corresponding Ed25519 PublicKey.
func (sk SecretKey) PublicKey() PublicKey {
	priv := ed25519.NewKeyFromSeed(sk[:])
	pub := priv.Public().(ed25519.PublicKey)

	var pk PublicKey
	copy(pk[:], pub)

	return pk
}

// Sign signs message and returns the 64-byte Ed25519 signature.
func (sk SecretKey) Sign(message []byte) []byte {
	priv := ed25519.NewKeyFromSeed(sk[:])

	return ed25519.Sign(priv, message)
}

// Printable renders the mosec0... printable form. Callers should treat the
// result as sensitive and avoid logging it.
func (sk SecretKey) Printable() string {
	return zbase32.EncodeTyped(zbase32.PrefixSecretKey, sk[:])
}

// ParseSecretKey decodes a mosec0... printable SecretKey.
func ParseSecretKey(s string) (SecretKey, error) {
	b, err := zbase32.DecodeTyped(zbase32.PrefixSecretKey, s, Size)
	if err != nil {
		return SecretKey{}, err
	}

	return NewSecretKey(b)
}

// GoString deliberately does not print key material, so that
// fmt.Sprintf("%#v", sk) in a log statement doesn't leak a secret.
func (sk SecretKey) GoString() string {
	return "keys.SecretKey{...}"
}

// String deliberately does not print key material.
func (sk SecretKey) String() string {
	return "keys.SecretKey{...}"
}
