package filter

import (
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/errs"
)

// Builder incrementally assembles a Filter from individually-built
// elements, mirroring tag.Builder's append-then-Build flow.
type Builder struct {
	elements [][]byte
}

// NewBuilder returns an empty Filter Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddElement appends an already-encoded element (as produced by one of
// the New* constructors in elements_typed.go).
func (b *Builder) AddElement(encoded []byte) error {
	if len(encoded) < HeaderSize || len(encoded)%Word != 0 {
		return errs.At(errs.ErrInvalidFilterElement)
	}

	b.elements = append(b.elements, encoded)

	return nil
}

// Build finalizes the builder into a Filter.
func (b *Builder) Build() (Filter, error) {
	total := ContainerHeaderSize
	for _, e := range b.elements {
		total += len(e)
	}
	if total > 1<<16-1 {
		return nil, errs.At(errs.ErrFilterElementTooLong)
	}

	out := make([]byte, ContainerHeaderSize, total)
	binary.LittleEndian.PutUint16(out[0:2], uint16(total))

	for _, e := range b.elements {
		out = append(out, e...)
	}

	return Filter(out), nil
}
