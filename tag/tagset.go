package tag

import (
	"iter"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/internal/pad"
)

// TagSet is a borrowed view over the concatenation of a record's tags,
// optionally followed by a zero tail (the type-0 padding a record's tag
// section carries out to its 8-byte boundary).
type TagSet []byte

// NewTagSet validates that b is a well-formed concatenation of tags (each
// one parses, none overruns the buffer) and wraps it. A trailing run of
// zero bytes is accepted as padding; anything else after the last tag is
// an error.
func NewTagSet(b []byte) (TagSet, error) {
	offset := 0
	for offset < len(b) {
		_, n, err := Parse(b[offset:])
		if err != nil {
			if pad.IsZero(b[offset:]) {
				break
			}

			return nil, err
		}

		offset += n
	}

	return TagSet(b), nil
}

// All iterates the set's tags left to right in insertion order, stopping
// at the zero padding tail if the set carries one.
func (ts TagSet) All() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		offset := 0
		for offset < len(ts) {
			t, n, err := Parse([]byte(ts[offset:]))
			if err != nil {
				return
			}

			if !yield(t) {
				return
			}

			offset += n
		}
	}
}

// Count returns the number of tags in the set.
func (ts TagSet) Count() int {
	n := 0
	for range ts.All() {
		n++
	}

	return n
}

// Contains reports whether the set has a tag byte-for-byte equal to want.
func (ts TagSet) Contains(want Tag) bool {
	for t := range ts.All() {
		if string(t) == string(want) {
			return true
		}
	}

	return false
}

// Bytes returns the raw concatenated tag bytes.
func (ts TagSet) Bytes() []byte {
	return ts
}

// Builder incrementally appends tags into an owned buffer, mirroring
// mebo's append-only columnar encoders (encoding.TagEncoder).
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty TagSet Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append encodes and appends a single tag.
func (b *Builder) Append(t Type, data []byte) error {
	encoded, err := New(t, data)
	if err != nil {
		return err
	}

	b.buf = append(b.buf, encoded...)

	return nil
}

// AppendRaw appends an already-encoded tag, validating it parses cleanly
// and consumes exactly its own length.
func (b *Builder) AppendRaw(raw []byte) error {
	t, n, err := Parse(raw)
	if err != nil {
		return err
	}
	if n != len(raw) {
		return errs.At(errs.ErrInvalidTag)
	}

	b.buf = append(b.buf, []byte(t)...)

	return nil
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Build finalizes the builder into a TagSet.
func (b *Builder) Build() TagSet {
	return TagSet(b.buf)
}
