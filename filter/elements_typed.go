package filter

import (
	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

const (
	keyWords   = keys.Size / Word // 4
	maxKeys    = (MaxWordLen - 1) / keyWords
	maxTimestamps = MaxWordLen - 1
	maxTagBytes   = maxTimestamps * Word
)

func buildKeyList(t Type, pks []keys.PublicKey) ([]byte, error) {
	if len(pks) > maxKeys {
		return nil, errs.At(errs.ErrFilterElementTooLong)
	}

	h, err := newHeader(t, 0, 1+len(pks)*keyWords)
	if err != nil {
		return nil, err
	}

	out := h
	for _, pk := range pks {
		out = append(out, pk.Bytes()...)
	}

	return out, nil
}

// NewAuthorKeys builds an AuthorKeys element: matches if the record's
// author public key is any of pks.
func NewAuthorKeys(pks []keys.PublicKey) ([]byte, error) {
	return buildKeyList(AuthorKeys, pks)
}

// NewSigningKeys builds a SigningKeys element: matches if the record's
// signing public key is any of pks.
func NewSigningKeys(pks []keys.PublicKey) ([]byte, error) {
	return buildKeyList(SigningKeys, pks)
}

// NewKinds builds a Kinds element using full 8-byte Kind entries (see
// DESIGN.md's open-question resolution on the Kinds element width).
func NewKinds(kinds []kind.Kind) ([]byte, error) {
	if len(kinds) > MaxWordLen-1 {
		return nil, errs.At(errs.ErrFilterElementTooLong)
	}

	h, err := newHeader(Kinds, byte(len(kinds)), 1+len(kinds))
	if err != nil {
		return nil, err
	}

	out := h
	for _, k := range kinds {
		b := k.Bytes()
		out = append(out, b[:]...)
	}

	return out, nil
}

// NewTimestamps builds a Timestamps element: matches if the record's
// timestamp is any of ts.
func NewTimestamps(ts []timestamp.Timestamp) ([]byte, error) {
	if len(ts) > maxTimestamps {
		return nil, errs.At(errs.ErrFilterElementTooLong)
	}

	h, err := newHeader(Timestamps, 0, 1+len(ts))
	if err != nil {
		return nil, err
	}

	out := h
	for _, t := range ts {
		b := t.ToBytes()
		out = append(out, b[:]...)
	}

	return out, nil
}

func buildTagListElement(t Type, tagBytes []byte) ([]byte, error) {
	if len(tagBytes) > maxTagBytes {
		return nil, errs.At(errs.ErrFilterElementTooLong)
	}

	h, err := newHeader(t, 0, padWords(len(tagBytes)))
	if err != nil {
		return nil, err
	}

	out := append(h, tagBytes...)
	for len(out)%Word != 0 {
		out = append(out, 0)
	}

	return out, nil
}

// NewIncludedTags builds an IncludedTags element: matches if the record
// has any tag byte-for-byte equal to one of the concatenated tagBytes.
func NewIncludedTags(tagBytes []byte) ([]byte, error) {
	return buildTagListElement(IncludedTags, tagBytes)
}

// NewExcludedTags builds an ExcludedTags element: matches if the record
// has none of the concatenated tagBytes.
func NewExcludedTags(tagBytes []byte) ([]byte, error) {
	return buildTagListElement(ExcludedTags, tagBytes)
}

func buildSingleTimestamp(t Type, ts timestamp.Timestamp) ([]byte, error) {
	h, err := newHeader(t, 0, 2)
	if err != nil {
		return nil, err
	}

	b := ts.ToBytes()

	return append(h, b[:]...), nil
}

// NewSince builds a Since element: matches if record.Timestamp() >= bound.
func NewSince(bound timestamp.Timestamp) ([]byte, error) { return buildSingleTimestamp(Since, bound) }

// NewUntil builds an Until element: matches if record.Timestamp() < bound.
func NewUntil(bound timestamp.Timestamp) ([]byte, error) { return buildSingleTimestamp(Until, bound) }

// NewReceivedSince builds a server-side-only ReceivedSince element.
func NewReceivedSince(bound timestamp.Timestamp) ([]byte, error) {
	return buildSingleTimestamp(ReceivedSince, bound)
}

// NewReceivedUntil builds a server-side-only ReceivedUntil element.
func NewReceivedUntil(bound timestamp.Timestamp) ([]byte, error) {
	return buildSingleTimestamp(ReceivedUntil, bound)
}

// NewExclude builds an Exclude element: matches if none of prefixes
// equals the first 32 bytes of the record's id or address.
func NewExclude(prefixes [][32]byte) ([]byte, error) {
	if len(prefixes) > maxKeys {
		return nil, errs.At(errs.ErrFilterElementTooLong)
	}

	h, err := newHeader(Exclude, 0, 1+len(prefixes)*keyWords)
	if err != nil {
		return nil, err
	}

	out := h
	for _, p := range prefixes {
		out = append(out, p[:]...)
	}

	return out, nil
}

func kindsCount(e Element) int { return int(e.Extra()) }
