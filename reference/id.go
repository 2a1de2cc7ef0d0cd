// Package reference implements the Mosaic core's 48-byte reference types:
// Id, Address, and the discriminated Reference view over either, generalized
// from mebo's numeric_index_entry.go fixed-layout-struct-over-bytes pattern.
package reference

import (
	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/timestamp"
	"github.com/mosaic-proto/mosaic-core/zbase32"
)

// Size is the packed byte length of an Id, Address, or Reference.
const Size = 48

// Id identifies a record by the moment it was signed and a hash prefix of
// its signed digest: timestamp(8, MSB=0) ++ hash_prefix(40).
type Id [Size]byte

// IdFromParts packs a timestamp and a 40-byte hash prefix into an Id.
func IdFromParts(ts timestamp.Timestamp, hashPrefix [40]byte) Id {
	var id Id

	tsBytes := ts.ToBytes()
	copy(id[0:8], tsBytes[:])
	copy(id[8:48], hashPrefix[:])

	return id
}

// NewId parses an Id from exactly 48 bytes, rejecting a set high bit on
// byte[0] (that bit pattern belongs to Address).
func NewId(b []byte) (Id, error) {
	var id Id
	if len(b) != Size {
		return id, errs.At(errs.ErrReferenceLength)
	}

	copy(id[:], b)

	if err := id.verify(); err != nil {
		return Id{}, err
	}

	return id, nil
}

func (id Id) verify() error {
	if id[0]&0x80 != 0 {
		return errs.At(errs.ErrInvalidIdBytes)
	}

	if _, err := timestamp.FromBytes(id[0:8]); err != nil {
		return errs.At(errs.ErrInvalidIdBytes)
	}

	return nil
}

// Bytes returns the packed 48-byte form.
func (id Id) Bytes() []byte {
	return id[:]
}

// Timestamp extracts the record's signing timestamp.
func (id Id) Timestamp() timestamp.Timestamp {
	ts, _ := timestamp.FromBytes(id[0:8])

	return ts
}

// HashPrefix extracts the 40-byte signed-digest prefix.
func (id Id) HashPrefix() [40]byte {
	var out [40]byte
	copy(out[:], id[8:48])

	return out
}

// Printable renders the moref0... printable form.
func (id Id) Printable() string {
	return zbase32.EncodeTyped(zbase32.PrefixReference, id[:])
}

// ParseId decodes a moref0... printable Id.
func ParseId(s string) (Id, error) {
	b, err := zbase32.DecodeTyped(zbase32.PrefixReference, s, Size)
	if err != nil {
		return Id{}, err
	}

	return NewId(b)
}
