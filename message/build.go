package message

import (
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/filter"
	"github.com/mosaic-proto/mosaic-core/internal/dedup"
	"github.com/mosaic-proto/mosaic-core/internal/hash"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/record"
	"github.com/mosaic-proto/mosaic-core/reference"
)

// NewHello builds a Hello frame: sub2[0] carries maxVersion, the body
// carries the requested application ids.
func NewHello(maxVersion byte, appIDs []uint32) Message {
	return buildHelloLike(TypeHello, 0, maxVersion, appIDs)
}

// NewHelloAck builds a HelloAck frame in reply to Hello.
func NewHelloAck(result ResultCode, maxVersion byte, appIDs []uint32) Message {
	return buildHelloLike(TypeHelloAck, byte(result), maxVersion, appIDs)
}

func buildHelloLike(t Type, code byte, maxVersion byte, appIDs []uint32) Message {
	body := make([]byte, len(appIDs)*4)
	for i, id := range appIDs {
		binary.LittleEndian.PutUint32(body[i*4:i*4+4], id)
	}

	h := newHeader(t, code, [2]byte{maxVersion, 0}, len(body))

	return Message(append(h, body...))
}

// NewGet builds a Get frame requesting refs by reference, silently
// dropping byte-exact duplicate references the way a Get-batch should
// before it's sent (internal/dedup.Tracker, the same de-dup primitive
// filter builders use for Exclude/IncludedTags lists).
func NewGet(queryID [2]byte, refs []reference.Reference) Message {
	tracker := dedup.NewTracker()

	body := make([]byte, 0, len(refs)*reference.Size)
	for _, r := range refs {
		b := r.Bytes()
		if tracker.Add(b) {
			continue
		}

		body = append(body, b...)
	}

	h := newHeader(TypeGet, 0, queryID, len(body))

	return Message(append(h, body...))
}

// NewQuery builds a Query frame.
func NewQuery(queryID [2]byte, limit uint16, f filter.Filter) Message {
	return buildQueryLike(TypeQuery, queryID, limit, f)
}

// NewSubscribe builds a Subscribe frame; identical body shape to Query.
func NewSubscribe(queryID [2]byte, limit uint16, f filter.Filter) Message {
	return buildQueryLike(TypeSubscribe, queryID, limit, f)
}

func buildQueryLike(t Type, queryID [2]byte, limit uint16, f filter.Filter) Message {
	body := make([]byte, queryHeaderSize, queryHeaderSize+len(f.Bytes()))
	binary.LittleEndian.PutUint16(body[0:2], limit)
	body = append(body, f.Bytes()...)

	h := newHeader(t, 0, queryID, len(body))

	return Message(append(h, body...))
}

// NewUnsubscribe builds an Unsubscribe frame for queryID.
func NewUnsubscribe(queryID [2]byte) Message {
	return Message(newHeader(TypeUnsubscribe, 0, queryID, 0))
}

// NewSubmission builds a Submission frame carrying r.
func NewSubmission(r record.Record) Message {
	h := newHeader(TypeSubmission, 0, [2]byte{}, len(r.Bytes()))

	return Message(append(h, r.Bytes()...))
}

// NewRecord builds a server-pushed Record frame for a subscription/query
// result identified by queryID.
func NewRecord(queryID [2]byte, r record.Record) Message {
	h := newHeader(TypeRecord, 0, queryID, len(r.Bytes()))

	return Message(append(h, r.Bytes()...))
}

// NewLocallyComplete builds a LocallyComplete frame for queryID.
func NewLocallyComplete(queryID [2]byte) Message {
	return Message(newHeader(TypeLocallyComplete, 0, queryID, 0))
}

// NewQueryClosed builds a QueryClosed frame for queryID with result.
func NewQueryClosed(queryID [2]byte, result ResultCode) Message {
	return Message(newHeader(TypeQueryClosed, byte(result), queryID, 0))
}

// NewSubmissionResult builds a SubmissionResult frame carrying id's first
// 32 bytes. It panics if id has its high bit set (that's an Address, not
// an Id) since that would encode a message this core itself would refuse
// to parse.
func NewSubmissionResult(result ResultCode, id reference.Id) Message {
	prefix := id.Bytes()[:32]
	if prefix[0]&0x80 != 0 {
		panic("message: NewSubmissionResult given an Address-shaped Id")
	}

	h := newHeader(TypeSubmissionResult, byte(result), [2]byte{}, 32)

	return Message(append(h, prefix...))
}

// NewBlobGet builds a BlobGet frame requesting the blob with the given
// BLAKE3 hash.
func NewBlobGet(h [32]byte) Message {
	hdr := newHeader(TypeBlobGet, 0, [2]byte{}, 32)

	return Message(append(hdr, h[:]...))
}

// NewBlobSubmission builds a BlobSubmission frame, computing blob's
// BLAKE3 hash.
func NewBlobSubmission(blob []byte) Message {
	digest := hash.Digest32(blob)
	hdr := newHeader(TypeBlobSubmission, 0, [2]byte{}, 32+len(blob))
	body := append(digest[:], blob...)

	return Message(append(hdr, body...))
}

// NewBlobResult builds a BlobResult frame in reply to BlobGet.
func NewBlobResult(result ResultCode, blob []byte) Message {
	digest := hash.Digest32(blob)
	hdr := newHeader(TypeBlobResult, byte(result), [2]byte{}, 32+len(blob))
	body := append(digest[:], blob...)

	return Message(append(hdr, body...))
}

// NewBlobSubmissionResult builds a BlobSubmissionResult frame
// acknowledging a BlobSubmission by hash.
func NewBlobSubmissionResult(result ResultCode, h [32]byte) Message {
	hdr := newHeader(TypeBlobSubmissionResult, byte(result), [2]byte{}, 32)

	return Message(append(hdr, h[:]...))
}

// NewDhtLookup builds a DhtLookup frame. server selects whether the
// lookup targets a ServerBootstrap (true) or UserBootstrap (false) record.
func NewDhtLookup(server bool, pk keys.PublicKey) Message {
	code := byte(0)
	if server {
		code = 1
	}

	hdr := newHeader(TypeDhtLookup, code, [2]byte{}, keys.Size)

	return Message(append(hdr, pk.Bytes()...))
}

// NewDhtResponse builds a DhtResponse frame carrying opaque lookup result
// bytes (the DHT value, interpreted by the bootstrap package).
func NewDhtResponse(result ResultCode, data []byte) Message {
	hdr := newHeader(TypeDhtResponse, byte(result), [2]byte{}, len(data))

	return Message(append(hdr, data...))
}

// NewClosing builds a Closing frame announcing result as the reason the
// connection is ending.
func NewClosing(result ResultCode) Message {
	return Message(newHeader(TypeClosing, byte(result), [2]byte{}, 0))
}
