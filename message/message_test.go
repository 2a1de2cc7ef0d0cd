package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-proto/mosaic-core/filter"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/message"
	"github.com/mosaic-proto/mosaic-core/record"
	"github.com/mosaic-proto/mosaic-core/reference"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

func buildRecord(t *testing.T) record.Record {
	t.Helper()

	sk, err := keys.Generate()
	require.NoError(t, err)

	r, err := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.Example,
		Timestamp:       timestamp.Now(),
		Payload:         []byte("hi"),
	}.Build()
	require.NoError(t, err)

	return r
}

func TestGetRoundTrip(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	addr, err := reference.NewRandom(sk.PublicKey(), kind.Example)
	require.NoError(t, err)
	ref1 := reference.FromAddress(addr)

	ts, err := timestamp.FromNanoseconds(42)
	require.NoError(t, err)
	ref2 := reference.FromId(reference.IdFromParts(ts, [40]byte{1}))

	m := message.NewGet([2]byte{0, 1}, []reference.Reference{ref1, ref2})

	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, message.TypeGet, parsed.Type())
	require.Equal(t, [2]byte{0, 1}, parsed.QueryID())

	refs := parsed.References()
	require.Len(t, refs, 2)
	require.Equal(t, ref1, refs[0])
	require.Equal(t, ref2, refs[1])
}

func TestGetDedupsReferences(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	addr, err := reference.NewRandom(sk.PublicKey(), kind.Example)
	require.NoError(t, err)
	ref := reference.FromAddress(addr)

	m := message.NewGet([2]byte{0, 0}, []reference.Reference{ref, ref, ref})

	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Len(t, parsed.References(), 1)
}

func TestQueryRoundTrip(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	b := filter.NewBuilder()
	require.NoError(t, b.AuthorKeys([]keys.PublicKey{sk.PublicKey()}))
	f, err := b.Build()
	require.NoError(t, err)

	m := message.NewQuery([2]byte{9, 9}, 100, f)

	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, message.TypeQuery, parsed.Type())
	require.Equal(t, uint16(100), parsed.Limit())
	require.Equal(t, f.Bytes(), parsed.Filter().Bytes())
}

func TestSubmissionRoundTrip(t *testing.T) {
	r := buildRecord(t)
	m := message.NewSubmission(r)

	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, message.TypeSubmission, parsed.Type())
	require.Equal(t, r.Bytes(), parsed.Record().Bytes())
}

func TestSubmissionRejectsCorruptRecord(t *testing.T) {
	r := buildRecord(t)
	m := message.NewSubmission(r)
	raw := append([]byte(nil), m.Bytes()...)
	raw[len(raw)-1] ^= 0xFF

	_, err := message.Parse(raw)
	require.Error(t, err)
}

func TestBlobSubmissionRoundTrip(t *testing.T) {
	blob := []byte("a blob of arbitrary bytes")
	m := message.NewBlobSubmission(blob)

	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, blob, parsed.Blob())
}

func TestBlobSubmissionRejectsHashMismatch(t *testing.T) {
	m := message.NewBlobSubmission([]byte("original"))
	raw := append([]byte(nil), m.Bytes()...)
	raw[message.HeaderSize] ^= 0xFF // corrupt the hash

	_, err := message.Parse(raw)
	require.Error(t, err)
}

func TestHelloRoundTrip(t *testing.T) {
	m := message.NewHello(1, []uint32{7, 9})

	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, byte(1), parsed.MaxVersion())
	require.Equal(t, []uint32{7, 9}, parsed.AppIDs())
}

func TestSubmissionResultRejectsAddressShapedId(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)
	addr, err := reference.NewRandom(sk.PublicKey(), kind.Example)
	require.NoError(t, err)

	require.Panics(t, func() {
		message.NewSubmissionResult(message.ResultOK, reference.Id(addr))
	})
}

func TestSubmissionResultRoundTrip(t *testing.T) {
	ts, err := timestamp.FromNanoseconds(5)
	require.NoError(t, err)
	id := reference.IdFromParts(ts, [40]byte{9})

	m := message.NewSubmissionResult(message.ResultOK, id)

	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, message.ResultOK, parsed.ResultCode())
	prefix := parsed.IdPrefix()
	require.Equal(t, id.Bytes()[:32], prefix[:])
}

func TestUnsubscribeAndLocallyComplete(t *testing.T) {
	u := message.NewUnsubscribe([2]byte{3, 4})
	parsed, err := message.Parse(u.Bytes())
	require.NoError(t, err)
	require.Equal(t, [2]byte{3, 4}, parsed.QueryID())

	lc := message.NewLocallyComplete([2]byte{3, 4})
	_, err = message.Parse(lc.Bytes())
	require.NoError(t, err)
}

func TestDhtLookupRoundTrip(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	m := message.NewDhtLookup(true, sk.PublicKey())
	parsed, err := message.Parse(m.Bytes())
	require.NoError(t, err)
	require.Equal(t, byte(1), parsed.Code())
	require.Equal(t, sk.PublicKey(), parsed.PublicKey())
}

func TestParseRejectsTruncatedHeader(t *testing.T) {
	_, err := message.Parse([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestParseRejectsWrongLength(t *testing.T) {
	m := message.NewClosing(message.ResultOK)
	raw := append(m.Bytes(), 0, 0, 0)

	_, err := message.Parse(raw)
	require.Error(t, err)
}
