package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/reference"
	"github.com/mosaic-proto/mosaic-core/tag"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

type fakeRecord struct {
	id          reference.Id
	addr        reference.Address
	author      keys.PublicKey
	signing     keys.PublicKey
	k           kind.Kind
	ts          timestamp.Timestamp
	tags        tag.TagSet
	receivedAt  timestamp.Timestamp
	hasReceived bool
}

func (f fakeRecord) ID() reference.Id                        { return f.id }
func (f fakeRecord) Address() reference.Address              { return f.addr }
func (f fakeRecord) AuthorPublicKey() keys.PublicKey          { return f.author }
func (f fakeRecord) SigningPublicKey() keys.PublicKey         { return f.signing }
func (f fakeRecord) Kind() kind.Kind                          { return f.k }
func (f fakeRecord) Timestamp() timestamp.Timestamp           { return f.ts }
func (f fakeRecord) Tags() tag.TagSet                         { return f.tags }
func (f fakeRecord) ReceivedAt() (timestamp.Timestamp, bool)  { return f.receivedAt, f.hasReceived }

func newFakeRecord(t *testing.T) fakeRecord {
	t.Helper()

	sk, err := keys.Generate()
	require.NoError(t, err)
	pk := sk.PublicKey()

	addr, err := reference.NewRandom(pk, kind.MicroblogRoot)
	require.NoError(t, err)

	ts, err := timestamp.FromNanoseconds(1000)
	require.NoError(t, err)

	id := reference.IdFromParts(ts, [40]byte{1, 2, 3})

	return fakeRecord{
		id:      id,
		addr:    addr,
		author:  pk,
		signing: pk,
		k:       kind.MicroblogRoot,
		ts:      ts,
	}
}

func TestFilter_AuthorKeysMatches(t *testing.T) {
	rec := newFakeRecord(t)

	el, err := NewAuthorKeys([]keys.PublicKey{rec.author})
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, b.AddElement(el))
	f, err := b.Build()
	require.NoError(t, err)

	ok, err := f.Matches(rec)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, f.IsNarrow())
}

func TestFilter_AuthorKeysNoMatch(t *testing.T) {
	rec := newFakeRecord(t)

	other, _ := keys.Generate()
	el, err := NewAuthorKeys([]keys.PublicKey{other.PublicKey()})
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, b.AddElement(el))
	f, err := b.Build()
	require.NoError(t, err)

	ok, err := f.Matches(rec)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFilter_SinceUntil(t *testing.T) {
	rec := newFakeRecord(t)

	since, err := NewSince(rec.ts - 1)
	require.NoError(t, err)
	until, err := NewUntil(rec.ts + 1)
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, b.AddElement(since))
	require.NoError(t, b.AddElement(until))
	f, err := b.Build()
	require.NoError(t, err)

	ok, err := f.Matches(rec)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, f.IsNarrow())
}

func TestFilter_ReceivedSinceSkippedWithoutReceiptTime(t *testing.T) {
	rec := newFakeRecord(t)

	el, err := NewReceivedSince(rec.ts)
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, b.AddElement(el))
	f, err := b.Build()
	require.NoError(t, err)

	ok, err := f.Matches(rec)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFilter_UnknownElementIsHardError(t *testing.T) {
	raw := make([]byte, HeaderSize)
	raw[0] = 0xFE
	raw[1] = 1

	b := NewBuilder()
	require.NoError(t, b.AddElement(raw))
	f, err := b.Build()
	require.NoError(t, err)

	rec := newFakeRecord(t)
	_, err = f.Matches(rec)
	require.Error(t, err)
	var target *errs.UnknownFilterElementError
	require.ErrorAs(t, err, &target)
}

func TestFilter_Kinds(t *testing.T) {
	rec := newFakeRecord(t)

	el, err := NewKinds([]kind.Kind{kind.Profile, rec.k})
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, b.AddElement(el))
	f, err := b.Build()
	require.NoError(t, err)

	ok, err := f.Matches(rec)
	require.NoError(t, err)
	require.True(t, ok)
}
