package record

import (
	"crypto/ed25519"

	"github.com/mosaic-proto/mosaic-core/keys"
)

// ed25519Verify checks sig over digest under pk.
func ed25519Verify(pk keys.PublicKey, digest, sig []byte) bool {
	return ed25519.Verify(pk.Ed25519(), digest, sig)
}
