// Package tag implements the Mosaic core's Tag and TagSet: a
// length-prefixed, typed key/value pair format generalized from mebo's
// encoding.TagEncoder/TagDecoder varint-length-prefixed string tags
// (encoding/tag.go) to a fixed 2-byte-type/1-byte-length header over
// arbitrary binary payloads.
package tag

import (
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/reference"
)

// HeaderSize is the fixed type+length prefix every tag carries.
const HeaderSize = 3

// MaxDataLen is the largest payload a single tag may carry.
const MaxDataLen = 253

// payloadOffset is how many data bytes precede the documented payload in
// the representative tag types below (NotifyPublicKey, Reply, Root,
// NostrSister, Subkey place their payload at full-tag byte 8, i.e. data
// byte 5; content-segment tags place their u32 offset at data byte 1).
const payloadOffset = 5

// Tag is a borrowed view over a single encoded tag: type(2 LE) ++ len(1)
// ++ data[len].
type Tag []byte

// Parse reads one tag from the front of b, returning the view and the
// number of bytes consumed. It fails with ErrEndOfInput if b is shorter
// than the header plus declared data length, with ErrPadding if the type
// is the reserved value 0 (how a record's zero-padded tag section marks
// its end), and with ErrTagTooLong if the declared length exceeds
// MaxDataLen.
func Parse(b []byte) (Tag, int, error) {
	if len(b) < HeaderSize {
		return nil, 0, errs.At(errs.ErrEndOfInput)
	}

	typ := binary.LittleEndian.Uint16(b[0:2])
	if typ == 0 {
		return nil, 0, errs.At(errs.ErrPadding)
	}

	dataLen := int(b[2])
	if dataLen > MaxDataLen {
		return nil, 0, errs.At(errs.ErrTagTooLong)
	}

	total := HeaderSize + dataLen
	if len(b) < total {
		return nil, 0, errs.At(errs.ErrEndOfInput)
	}

	return Tag(b[:total]), total, nil
}

// New builds a single encoded tag from a type and payload bytes.
func New(t Type, data []byte) ([]byte, error) {
	if t == 0 {
		return nil, errs.At(errs.ErrInvalidTag)
	}
	if len(data) > MaxDataLen {
		return nil, errs.At(errs.ErrTagTooLong)
	}

	out := make([]byte, HeaderSize+len(data))
	binary.LittleEndian.PutUint16(out[0:2], uint16(t))
	out[2] = byte(len(data))
	copy(out[3:], data)

	return out, nil
}

// Type returns the tag's type.
func (tg Tag) Type() Type {
	return Type(binary.LittleEndian.Uint16(tg[0:2]))
}

// DataLen returns the declared payload length.
func (tg Tag) DataLen() int {
	return int(tg[2])
}

// Data returns the raw payload bytes.
func (tg Tag) Data() []byte {
	return tg[HeaderSize:]
}

// NotifyPublicKeyTarget returns the notified PublicKey, if this is a
// NotifyPublicKey tag.
func (tg Tag) NotifyPublicKeyTarget() (keys.PublicKey, bool) {
	if tg.Type() != NotifyPublicKey || len(tg.Data()) < payloadOffset+keys.Size {
		return keys.PublicKey{}, false
	}

	pk, err := keys.NewPublicKey(tg.Data()[payloadOffset : payloadOffset+keys.Size])
	if err != nil {
		return keys.PublicKey{}, false
	}

	return pk, true
}

// ReplyTarget returns the (kind, reference) pair a Reply or Root tag
// points to.
func (tg Tag) ReplyTarget() (kind.Kind, reference.Reference, bool) {
	if tg.Type() != Reply && tg.Type() != Root {
		return 0, reference.Reference{}, false
	}

	data := tg.Data()
	if len(data) < payloadOffset+8+reference.Size {
		return 0, reference.Reference{}, false
	}

	k := kind.FromBytes(data[payloadOffset : payloadOffset+8])

	ref, err := reference.NewReference(data[payloadOffset+8 : payloadOffset+8+reference.Size])
	if err != nil {
		return 0, reference.Reference{}, false
	}

	return k, ref, true
}

// NostrSisterID returns the foreign 32-byte event id of a NostrSister tag.
func (tg Tag) NostrSisterID() ([32]byte, bool) {
	var out [32]byte
	if tg.Type() != NostrSister || len(tg.Data()) < payloadOffset+32 {
		return out, false
	}

	copy(out[:], tg.Data()[payloadOffset:payloadOffset+32])

	return out, true
}

// SubkeyTarget returns the subordinate PublicKey of a Subkey tag.
func (tg Tag) SubkeyTarget() (keys.PublicKey, bool) {
	if tg.Type() != Subkey || len(tg.Data()) < payloadOffset+keys.Size {
		return keys.PublicKey{}, false
	}

	pk, err := keys.NewPublicKey(tg.Data()[payloadOffset : payloadOffset+keys.Size])
	if err != nil {
		return keys.PublicKey{}, false
	}

	return pk, true
}

// ContentSegmentOffset returns the u32 LE byte offset into the record
// payload that a content-segment tag annotates.
func (tg Tag) ContentSegmentOffset() (uint32, bool) {
	if !tg.isContentSegment() || len(tg.Data()) < 5 {
		return 0, false
	}

	return binary.LittleEndian.Uint32(tg.Data()[1:5]), true
}

// ContentSegmentPayload returns the bytes following a content-segment
// tag's offset field.
func (tg Tag) ContentSegmentPayload() ([]byte, bool) {
	if !tg.isContentSegment() || len(tg.Data()) < 5 {
		return nil, false
	}

	return tg.Data()[5:], true
}

func (tg Tag) isContentSegment() bool {
	switch tg.Type() {
	case ContentSegmentUserMention, ContentSegmentServerMention, ContentSegmentQuote,
		ContentSegmentURL, ContentSegmentImage, ContentSegmentVideo:
		return true
	default:
		return false
	}
}
