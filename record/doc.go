// Package record implements the Mosaic core's signed, content-addressed
// Record container.
//
// A Record is a fixed 208-byte header followed by an 8-byte-padded tag
// section and an 8-byte-padded payload section. The header holds the
// 64-byte Ed25519 signature, the signing public key, the 48-byte Address,
// the big-endian timestamp, the flag bits, and the two section lengths;
// every remaining header byte is reserved and must be zero.
//
// # Core Types
//
//   - Record: a borrowed, read-only view over one encoded record. All
//     accessors are O(1) slices into the backing bytes.
//   - Parts: the builder input — how to sign (a SecretKey, or a PreSigned
//     signature produced externally), how to address (random,
//     deterministic, or provided), and the record's content.
//   - Flags: the 16-bit flag field, including the two signature-scheme
//     selector bits and the payload-compression bit.
//
// # Building and Verifying
//
// Parts.Build lays out the header, tag section, and payload, digests
// everything after the signature with BLAKE3, signs the digest, and
// returns the finished Record. Record.Verify re-derives the digest and
// checks the signature; Parse checks every structural invariant (section
// lengths, reserved zeros, tag well-formedness, scheme bits) without
// touching the signature, so the two are meant to be used together when
// accepting records from an untrusted peer.
//
// The record's Id is derived, not stored: timestamp(8, big-endian)
// followed by the first 40 bytes of the same BLAKE3 digest the signature
// covers. Two records with identical signed content therefore share an
// Id, and any change to the signed region changes it.
//
// # Payload Compression
//
// A payload may be Zstd-compressed before the record is built
// (Parts.Compress); the FlagZstd bit records this and Record.Payload
// transparently decompresses. Compression happens strictly before
// signing, so the signed bytes are exactly the wire bytes.
package record
