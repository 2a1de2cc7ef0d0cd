// Package zbase32 implements the human-printable codec used for Mosaic
// identity and reference handles: Zooko's base32 alphabet, wrapped with a
// fixed ASCII prefix per handle type.
//
// No library in the retrieval pack implements z-base-32 (see DESIGN.md), so
// this is a small hand-rolled bit-packing codec in the style of mebo's
// single-purpose leaf packages (endian, internal/hash): one file, one
// well-defined job.
package zbase32

import (
	"strings"

	"github.com/mosaic-proto/mosaic-core/errs"
)

const alphabet = "ybndrfg8ejkmcpqxot1uwisza345h769"

var reverse [256]int8

func init() {
	for i := range reverse {
		reverse[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		reverse[alphabet[i]] = int8(i)
	}
}

// Typed prefixes for each Mosaic printable handle, per spec §6.2.
const (
	PrefixPublicKey         = "mopub0"
	PrefixSecretKey         = "mosec0"
	PrefixReference         = "moref0"
	PrefixEncryptedSecretKey = "mocryptsec0"
)

// Encode encodes data using the z-base-32 alphabet with no padding
// character; the length of the output is implicit from the bit count.
func Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow((len(data)*8 + 4) / 5)

	var buffer uint32
	var bits uint

	for _, b := range data {
		buffer = (buffer << 8) | uint32(b)
		bits += 8

		for bits >= 5 {
			bits -= 5
			idx := (buffer >> bits) & 0x1f
			sb.WriteByte(alphabet[idx])
		}
	}

	if bits > 0 {
		idx := (buffer << (5 - bits)) & 0x1f
		sb.WriteByte(alphabet[idx])
	}

	return sb.String()
}

// Decode decodes a z-base-32 string back into bytes. It fails if the string
// contains characters outside the alphabet, or if the trailing bits that
// don't make a full byte are non-zero (which would indicate the string
// wasn't produced by Encode).
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*5/8+1)

	var buffer uint32
	var bits uint

	for i := 0; i < len(s); i++ {
		v := reverse[s[i]]
		if v < 0 {
			return nil, errs.At(errs.ErrInvalidPrintable)
		}

		buffer = (buffer << 5) | uint32(v)
		bits += 5

		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buffer>>bits))
		}
	}

	if bits > 0 {
		mask := uint32(1)<<bits - 1
		if buffer&mask != 0 {
			return nil, errs.At(errs.ErrInvalidPrintable)
		}
	}

	return out, nil
}

// EncodeTyped prepends prefix to the z-base-32 encoding of data.
func EncodeTyped(prefix string, data []byte) string {
	return prefix + Encode(data)
}

// DecodeTyped strips prefix, decodes the remainder, and checks it decodes to
// exactly wantLen bytes. Further field-level validation is left to the
// typed constructor the caller feeds the bytes into.
func DecodeTyped(prefix, s string, wantLen int) ([]byte, error) {
	if !strings.HasPrefix(s, prefix) {
		return nil, errs.At(errs.ErrInvalidPrintable)
	}

	data, err := Decode(s[len(prefix):])
	if err != nil {
		return nil, err
	}

	if len(data) != wantLen {
		return nil, errs.At(errs.ErrInvalidPrintable)
	}

	return data, nil
}
