package record

// Flags is the Record header's 16-bit flag field, modeled directly on
// the original implementation's RecordFlags bitflags (Zstd,
// FromAuthor, ToRecipients, NoBridge, Ephemeral), with the top 2 bits
// repurposed to select a signature scheme.
type Flags uint16

const (
	FlagZstd         Flags = 0x0001
	FlagFromAuthor   Flags = 0x0002
	FlagToRecipients Flags = 0x0004
	FlagNoBridge     Flags = 0x0008
	FlagEphemeral    Flags = 0x0010
)

const (
	schemeMask    = 0xC000
	schemeShift   = 14
	knownBitsMask = FlagZstd | FlagFromAuthor | FlagToRecipients | FlagNoBridge | FlagEphemeral
)

// reservedMask is every bit that isn't a known flag and isn't part of
// the signature-scheme selector; these must be zero.
const reservedMask = ^uint16(knownBitsMask) &^ schemeMask

// SignatureScheme selects which asymmetric scheme signed the record.
type SignatureScheme uint8

const (
	SchemeEd25519 SignatureScheme = 0
)

// Scheme extracts the signature scheme from the top 2 bits.
func (f Flags) Scheme() SignatureScheme {
	return SignatureScheme((uint16(f) & schemeMask) >> schemeShift)
}

// withScheme sets the top 2 bits to scheme, leaving the rest untouched.
func (f Flags) withScheme(scheme SignatureScheme) Flags {
	return Flags(uint16(f)&^uint16(schemeMask) | (uint16(scheme)<<schemeShift)&schemeMask)
}

// IsZstd reports whether the payload is Zstandard-compressed.
func (f Flags) IsZstd() bool { return f&FlagZstd != 0 }

// IsFromAuthor reports the FromAuthor bit.
func (f Flags) IsFromAuthor() bool { return f&FlagFromAuthor != 0 }

// IsToRecipients reports the ToRecipients bit.
func (f Flags) IsToRecipients() bool { return f&FlagToRecipients != 0 }

// IsNoBridge reports the NoBridge bit.
func (f Flags) IsNoBridge() bool { return f&FlagNoBridge != 0 }

// IsEphemeral reports the Ephemeral bit.
func (f Flags) IsEphemeral() bool { return f&FlagEphemeral != 0 }

// hasReservedBitsSet reports whether any bit outside the known flags and
// the scheme selector is set.
func (f Flags) hasReservedBitsSet() bool {
	return uint16(f)&reservedMask != 0
}
