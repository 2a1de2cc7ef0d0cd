// Package hash wraps the opaque BLAKE3 primitive the Mosaic core consumes,
// the same way mebo's internal/hash wraps xxHash64 behind a single function
// per use site.
package hash

import "lukechampine.com/blake3"

// Digest32 returns the 32-byte BLAKE3 hash of data. Used as the signed
// digest for Records.
func Digest32(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// Prefix40 returns the first 40 bytes of the BLAKE3 extendable output for
// data, used as the hash prefix of an Id.
func Prefix40(data []byte) [40]byte {
	h := blake3.New(32, nil)
	_, _ = h.Write(data)

	var out [40]byte
	xof := h.XOF()
	_, _ = xof.Read(out[:])

	return out
}
