package filter

import (
	"encoding/binary"
	"errors"
	"iter"

	"github.com/mosaic-proto/mosaic-core/errs"
)

// ContainerHeaderSize is the Filter container's own fixed header:
// total_len(2 LE) + 6 reserved bytes.
const ContainerHeaderSize = 8

// Filter is a borrowed view over total_len:u16 LE ++ reserved[6] ++
// elements*.
type Filter []byte

// Parse validates and wraps a byte slice as a Filter: the declared
// total_len must match len(b), be a multiple of Word, and every element
// inside must parse cleanly back-to-back with no trailing slack.
func Parse(b []byte) (Filter, error) {
	if len(b) < ContainerHeaderSize {
		return nil, errs.At(errs.ErrEndOfInput)
	}

	totalLen := binary.LittleEndian.Uint16(b[0:2])
	if int(totalLen) != len(b) || totalLen%Word != 0 {
		return nil, errs.At(errs.ErrInvalidFilterElement)
	}

	for _, r := range b[2:8] {
		if r != 0 {
			return nil, errs.At(errs.ErrInvalidFilterElement)
		}
	}

	offset := ContainerHeaderSize
	for offset < len(b) {
		_, n, err := ParseElement(b[offset:])
		if err != nil {
			return nil, err
		}

		offset += n
	}

	return Filter(b), nil
}

// Elements iterates the filter's elements in order.
func (f Filter) Elements() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offset := ContainerHeaderSize
		for offset < len(f) {
			e, n, err := ParseElement([]byte(f[offset:]))
			if err != nil {
				return
			}

			if !yield(e) {
				return
			}

			offset += n
		}
	}
}

// IsNarrow reports whether the filter positively bounds the matching set
// via at least one AuthorKeys, SigningKeys, Kinds, Timestamps, or
// IncludedTags element.
func (f Filter) IsNarrow() bool {
	for e := range f.Elements() {
		switch e.Type() {
		case AuthorKeys, SigningKeys, Kinds, Timestamps, IncludedTags:
			return true
		}
	}

	return false
}

// Matches evaluates every element against r. Server-only elements
// (ReceivedSince/ReceivedUntil) matched against a record that can't
// supply a receipt time are silently skipped rather than treated as a
// failure; any other element error is fatal, including an unrecognized
// element type.
func (f Filter) Matches(r MatchableRecord) (bool, error) {
	for e := range f.Elements() {
		ok, err := e.matches(r)
		if err != nil {
			if errors.Is(err, errs.ErrInvalidFilterElementForFunc) {
				continue
			}

			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Bytes returns the raw encoded form.
func (f Filter) Bytes() []byte {
	return f
}
