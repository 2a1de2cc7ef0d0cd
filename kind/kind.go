// Package kind implements the Mosaic core's Kind: a packed 64-bit
// record-type label, modeled on mebo's packed-bitfield pattern
// (section/numeric_flag.go) of mask constants plus typed get/set
// accessors.
package kind

import "encoding/binary"

// Kind is a 64-bit big-endian record-type label: the upper 32 bits are an
// application id, the next 16 bits are an application-specific kind, and
// the low 16 bits are flags.
type Kind uint64

// Bit layout of the low 16 "flags" bits.
const (
	duplicateHandlingMask = 0b0000_0000_0000_0011
	readAccessMask        = 0b0000_0000_0000_1100
	printableMask         = 0b0000_0000_0001_0000

	readAccessShift = 2
)

// DuplicateHandling controls how records sharing an Address are treated.
type DuplicateHandling uint8

const (
	Unique DuplicateHandling = iota
	Ephemeral
	Replaceable
	Versioned
)

// ReadAccess controls who servers should allow to read a record.
type ReadAccess uint8

const (
	AuthorOnly ReadAccess = iota
	AuthorAndTagged
	readAccessReserved
	Everybody
)

// FromParts builds a Kind from an application id, an application-specific
// kind, and flag values.
func FromParts(appID uint32, appKind uint16, dup DuplicateHandling, access ReadAccess, printable bool) Kind {
	flags := uint16(dup&0b11) | (uint16(access&0b11) << readAccessShift)
	if printable {
		flags |= printableMask
	}

	return Kind(uint64(appID)<<32 | uint64(appKind)<<16 | uint64(flags))
}

// FromU64 wraps a raw uint64 as a Kind.
func FromU64(u uint64) Kind { return Kind(u) }

// ToU64 returns the raw uint64 value.
func (k Kind) ToU64() uint64 { return uint64(k) }

// FromBytes parses a Kind from its 8-byte big-endian wire form.
func FromBytes(b []byte) Kind {
	return Kind(binary.BigEndian.Uint64(b))
}

// Bytes serializes the Kind as 8 big-endian bytes.
func (k Kind) Bytes() [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], uint64(k))

	return out
}

// ApplicationID returns the upper 32 bits.
func (k Kind) ApplicationID() uint32 {
	return uint32(uint64(k) >> 32)
}

// ApplicationSpecificKind returns bits 16..32.
func (k Kind) ApplicationSpecificKind() uint16 {
	return uint16((uint64(k) >> 16) & 0xFFFF)
}

// Flags returns the low 16 bits, raw.
func (k Kind) Flags() uint16 {
	return uint16(uint64(k) & 0xFFFF)
}

// DuplicateHandling returns bits 0..2 of the flags.
func (k Kind) DuplicateHandling() DuplicateHandling {
	return DuplicateHandling(k.Flags() & duplicateHandlingMask)
}

// ReadAccess returns bits 2..4 of the flags.
func (k Kind) ReadAccess() ReadAccess {
	return ReadAccess((k.Flags() & readAccessMask) >> readAccessShift)
}

// IsPrintable returns bit 4 of the flags.
func (k Kind) IsPrintable() bool {
	return k.Flags()&printableMask != 0
}

// String names the handling mode for diagnostics.
func (d DuplicateHandling) String() string {
	switch d {
	case Unique:
		return "unique"
	case Ephemeral:
		return "ephemeral"
	case Replaceable:
		return "replaceable"
	default:
		return "versioned"
	}
}

// String names the access level for diagnostics.
func (a ReadAccess) String() string {
	switch a {
	case AuthorOnly:
		return "author_only"
	case AuthorAndTagged:
		return "author_and_tagged"
	case Everybody:
		return "everybody"
	default:
		return "reserved"
	}
}
