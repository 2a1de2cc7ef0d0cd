package reference

import (
	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/zbase32"
)

// Reference is a 48-byte view over either an Id or an Address, discriminated
// by the high bit of byte[0]: 0 means Id, 1 means Address.
type Reference [Size]byte

// FromId wraps an Id as a Reference.
func FromId(id Id) Reference {
	return Reference(id)
}

// FromAddress wraps an Address as a Reference.
func FromAddress(addr Address) Reference {
	return Reference(addr)
}

// NewReference parses a Reference from exactly 48 bytes, validating it as
// whichever variant its discriminating bit selects.
func NewReference(b []byte) (Reference, error) {
	var ref Reference
	if len(b) != Size {
		return ref, errs.At(errs.ErrReferenceLength)
	}

	copy(ref[:], b)

	if ref.IsId() {
		if _, err := NewId(b); err != nil {
			return Reference{}, err
		}
	} else {
		if _, err := NewAddress(b); err != nil {
			return Reference{}, err
		}
	}

	return ref, nil
}

// Bytes returns the packed 48-byte form.
func (ref Reference) Bytes() []byte {
	return ref[:]
}

// IsId reports whether byte[0]'s high bit is clear.
func (ref Reference) IsId() bool {
	return ref[0]&0x80 == 0
}

// IsAddress reports whether byte[0]'s high bit is set.
func (ref Reference) IsAddress() bool {
	return !ref.IsId()
}

// AsId converts to an Id, failing with ErrNotAnId if this Reference is an
// Address.
func (ref Reference) AsId() (Id, error) {
	if !ref.IsId() {
		return Id{}, errs.At(errs.ErrNotAnId)
	}

	return Id(ref), nil
}

// AsAddress converts to an Address, failing with ErrNotAnAddress if this
// Reference is an Id.
func (ref Reference) AsAddress() (Address, error) {
	if !ref.IsAddress() {
		return Address{}, errs.At(errs.ErrNotAnAddress)
	}

	return Address(ref), nil
}

// Printable renders the moref0... printable form.
func (ref Reference) Printable() string {
	return zbase32.EncodeTyped(zbase32.PrefixReference, ref[:])
}

// ParseReference decodes a moref0... printable Reference.
func ParseReference(s string) (Reference, error) {
	b, err := zbase32.DecodeTyped(zbase32.PrefixReference, s, Size)
	if err != nil {
		return Reference{}, err
	}

	return NewReference(b)
}
