package tag

import (
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/reference"
)

// Typed constructors for the well-known tag types. Each returns a fully
// encoded tag whose layout round-trips through the corresponding accessor
// on Tag (NotifyPublicKeyTarget, ReplyTarget, and so on).

func newKeyTag(t Type, pk keys.PublicKey) []byte {
	data := make([]byte, payloadOffset+keys.Size)
	copy(data[payloadOffset:], pk.Bytes())

	out, _ := New(t, data)

	return out
}

// NewNotifyPublicKey builds a NotifyPublicKey tag requesting that pk's
// owner be notified of the record.
func NewNotifyPublicKey(pk keys.PublicKey) []byte {
	return newKeyTag(NotifyPublicKey, pk)
}

// NewSubkey builds a Subkey tag marking pk as a subordinate key of the
// record's author.
func NewSubkey(pk keys.PublicKey) []byte {
	return newKeyTag(Subkey, pk)
}

func newReplyLike(t Type, k kind.Kind, ref reference.Reference) []byte {
	data := make([]byte, payloadOffset+8+reference.Size)
	kb := k.Bytes()
	copy(data[payloadOffset:], kb[:])
	copy(data[payloadOffset+8:], ref.Bytes())

	out, _ := New(t, data)

	return out
}

// NewReply builds a Reply tag pointing at the record being replied to.
func NewReply(k kind.Kind, ref reference.Reference) []byte {
	return newReplyLike(Reply, k, ref)
}

// NewRoot builds a Root tag pointing at the thread root.
func NewRoot(k kind.Kind, ref reference.Reference) []byte {
	return newReplyLike(Root, k, ref)
}

// NewNostrSister builds a NostrSister tag carrying the id of the
// equivalent event on the Nostr network.
func NewNostrSister(id [32]byte) []byte {
	data := make([]byte, payloadOffset+32)
	copy(data[payloadOffset:], id[:])

	out, _ := New(NostrSister, data)

	return out
}

func putSegmentOffset(data []byte, offset uint32) {
	binary.LittleEndian.PutUint32(data[1:5], offset)
}

// NewContentSegmentUserMention builds a user-mention content segment:
// the mentioned user's key, annotating the payload byte at offset.
func NewContentSegmentUserMention(pk keys.PublicKey, offset uint32) []byte {
	data := make([]byte, payloadOffset+keys.Size)
	putSegmentOffset(data, offset)
	copy(data[payloadOffset:], pk.Bytes())

	out, _ := New(ContentSegmentUserMention, data)

	return out
}

// NewContentSegmentServerMention builds a server-mention content segment.
func NewContentSegmentServerMention(pk keys.PublicKey, offset uint32) []byte {
	data := make([]byte, payloadOffset+keys.Size)
	putSegmentOffset(data, offset)
	copy(data[payloadOffset:], pk.Bytes())

	out, _ := New(ContentSegmentServerMention, data)

	return out
}

// NewContentSegmentQuote builds a quote content segment: the quoted
// record's kind and reference, annotating the payload byte at offset.
func NewContentSegmentQuote(k kind.Kind, ref reference.Reference, offset uint32) []byte {
	data := make([]byte, payloadOffset+8+reference.Size)
	putSegmentOffset(data, offset)
	kb := k.Bytes()
	copy(data[payloadOffset:], kb[:])
	copy(data[payloadOffset+8:], ref.Bytes())

	out, _ := New(ContentSegmentQuote, data)

	return out
}

func newURLTag(t Type, url string, offset uint32) ([]byte, error) {
	data := make([]byte, payloadOffset+len(url))
	putSegmentOffset(data, offset)
	copy(data[payloadOffset:], url)

	return New(t, data)
}

// NewContentSegmentURL builds a URL content segment. It fails with
// ErrTagTooLong if url doesn't fit a single tag.
func NewContentSegmentURL(url string, offset uint32) ([]byte, error) {
	return newURLTag(ContentSegmentURL, url, offset)
}

// NewContentSegmentImage builds an image-URL content segment.
func NewContentSegmentImage(url string, offset uint32) ([]byte, error) {
	return newURLTag(ContentSegmentImage, url, offset)
}

// NewContentSegmentVideo builds a video-URL content segment.
func NewContentSegmentVideo(url string, offset uint32) ([]byte, error) {
	return newURLTag(ContentSegmentVideo, url, offset)
}
