package reference

import (
	"crypto/rand"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/internal/hash"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/zbase32"
)

// Address identifies a record group: records sharing an Address are
// replaceable or versioned, per the group's Kind. Layout:
// nonce(8, MSB=1) ++ kind(8) ++ author_pubkey(32).
type Address [Size]byte

// AddressFromParts packs a nonce, kind, and author public key into an Address,
// forcing byte[0]'s high bit on.
func AddressFromParts(authorPublicKey keys.PublicKey, k kind.Kind, nonce [8]byte) Address {
	var addr Address

	copy(addr[0:8], nonce[:])
	addr[0] |= 0x80

	kindBytes := k.Bytes()
	copy(addr[8:16], kindBytes[:])
	copy(addr[16:48], authorPublicKey.Bytes())

	return addr
}

// NewRandom builds an Address with a CSPRNG-drawn nonce.
func NewRandom(authorPublicKey keys.PublicKey, k kind.Kind) (Address, error) {
	var nonce [8]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return Address{}, err
	}

	return AddressFromParts(authorPublicKey, k, nonce), nil
}

// NewDeterministic builds an Address whose nonce is the first 8 bytes of
// BLAKE3(keyMaterial), so that repeated calls with the same key material
// always reconstruct the same Address.
func NewDeterministic(authorPublicKey keys.PublicKey, k kind.Kind, keyMaterial []byte) Address {
	digest := hash.Digest32(keyMaterial)

	var nonce [8]byte
	copy(nonce[:], digest[0:8])

	return AddressFromParts(authorPublicKey, k, nonce)
}

// NewAddress parses an Address from exactly 48 bytes, rejecting a clear
// high bit on byte[0] (that bit pattern belongs to Id) or an embedded
// public key of the wrong length.
func NewAddress(b []byte) (Address, error) {
	var addr Address
	if len(b) != Size {
		return addr, errs.At(errs.ErrReferenceLength)
	}

	copy(addr[:], b)

	if err := addr.verify(); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (addr Address) verify() error {
	if addr[0]&0x80 == 0 {
		return errs.At(errs.ErrInvalidAddressBytes)
	}

	if _, err := keys.NewPublicKey(addr[16:48]); err != nil {
		return errs.At(errs.ErrInvalidAddressBytes)
	}

	return nil
}

// Bytes returns the packed 48-byte form.
func (addr Address) Bytes() []byte {
	return addr[:]
}

// Nonce extracts the 8-byte nonce, high bit included.
func (addr Address) Nonce() [8]byte {
	var out [8]byte
	copy(out[:], addr[0:8])

	return out
}

// Kind extracts the group's Kind.
func (addr Address) Kind() kind.Kind {
	return kind.FromBytes(addr[8:16])
}

// AuthorPublicKey extracts the embedded author public key.
func (addr Address) AuthorPublicKey() keys.PublicKey {
	pk, _ := keys.NewPublicKey(addr[16:48])

	return pk
}

// Printable renders the moref0... printable form.
func (addr Address) Printable() string {
	return zbase32.EncodeTyped(zbase32.PrefixReference, addr[:])
}

// ParseAddress decodes a moref0... printable Address.
func ParseAddress(s string) (Address, error) {
	b, err := zbase32.DecodeTyped(zbase32.PrefixReference, s, Size)
	if err != nil {
		return Address{}, err
	}

	return NewAddress(b)
}
