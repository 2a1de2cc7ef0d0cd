package filter

import (
	"github.com/mosaic-proto/mosaic-core/errs"
)

// Type identifies a FilterElement's matching semantics.
type Type uint8

const (
	AuthorKeys    Type = 0x01
	SigningKeys   Type = 0x02
	Kinds         Type = 0x03
	Timestamps    Type = 0x04
	IncludedTags  Type = 0x05
	Since         Type = 0x80
	Until         Type = 0x81
	ReceivedSince Type = 0x82
	ReceivedUntil Type = 0x83
	Exclude       Type = 0x84
	ExcludedTags  Type = 0x85
)

// Word is the alignment unit every FilterElement's length is a multiple
// of.
const Word = 8

// HeaderSize is the fixed 8-byte element header: type, word_len, 5
// reserved bytes, extra.
const HeaderSize = 8

// MaxWordLen bounds a single element's word count (word_len is a u8).
const MaxWordLen = 255

// Element is a borrowed view over one encoded FilterElement:
// type:u8 ++ word_len:u8 ++ reserved[5] ++ extra:u8 ++ data.
type Element []byte

// ParseElement reads one element from the front of b.
func ParseElement(b []byte) (Element, int, error) {
	if len(b) < HeaderSize {
		return nil, 0, errs.At(errs.ErrEndOfInput)
	}

	wordLen := b[1]
	total := int(wordLen) * Word
	if total < HeaderSize {
		return nil, 0, errs.At(errs.ErrInvalidFilterElement)
	}
	if len(b) < total {
		return nil, 0, errs.At(errs.ErrEndOfInput)
	}

	for _, r := range b[2:7] {
		if r != 0 {
			return nil, 0, errs.At(errs.ErrInvalidFilterElement)
		}
	}

	return Element(b[:total]), total, nil
}

// newHeader builds an 8-byte element header for the given type, extra
// byte, and total word count (header + payload words).
func newHeader(t Type, extra byte, wordLen int) ([]byte, error) {
	if wordLen > MaxWordLen {
		return nil, errs.At(errs.ErrFilterElementTooLong)
	}

	h := make([]byte, HeaderSize)
	h[0] = byte(t)
	h[1] = byte(wordLen)
	h[7] = extra

	return h, nil
}

// Type returns the element's type.
func (e Element) Type() Type {
	return Type(e[0])
}

// WordLen returns the declared word count (total byte length / 8).
func (e Element) WordLen() uint8 {
	return e[1]
}

// Extra returns the header's type-specific extra byte (a count for
// Kinds, unused for most other types).
func (e Element) Extra() byte {
	return e[7]
}

// Payload returns the bytes following the 8-byte header.
func (e Element) Payload() []byte {
	return e[HeaderSize:]
}

func padWords(dataLen int) int {
	words := (dataLen + HeaderSize + Word - 1) / Word

	return words
}
