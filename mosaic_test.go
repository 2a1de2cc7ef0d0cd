package mosaic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-proto/mosaic-core"
	"github.com/mosaic-proto/mosaic-core/filter"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/record"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

func TestGenerateKey(t *testing.T) {
	sk1, err := mosaic.GenerateKey()
	require.NoError(t, err)
	sk2, err := mosaic.GenerateKey()
	require.NoError(t, err)
	require.NotEqual(t, sk1, sk2)
}

func TestNewRecordDefaultsTimestamp(t *testing.T) {
	sk, err := mosaic.GenerateKey()
	require.NoError(t, err)

	r, err := mosaic.NewRecord(mosaic.RecordOptions{
		SecretKey: sk,
		Kind:      kind.Example,
		Payload:   []byte("hello"),
	})
	require.NoError(t, err)
	require.NoError(t, r.Verify())
	require.NotZero(t, r.Timestamp())
}

func TestNewRecordDeterministicIsStable(t *testing.T) {
	sk, err := mosaic.GenerateKey()
	require.NoError(t, err)

	build := func() (record.Record, error) {
		return mosaic.NewRecord(mosaic.RecordOptions{
			SecretKey:     sk,
			Kind:          kind.Profile,
			Timestamp:     timestamp.Now(),
			Payload:       []byte("profile"),
			Deterministic: true,
			NonceMaterial: []byte("profile-v1"),
		})
	}

	r1, err := build()
	require.NoError(t, err)
	r2, err := build()
	require.NoError(t, err)
	require.Equal(t, r1.Address(), r2.Address())
}

func TestParseRecordRoundTrip(t *testing.T) {
	sk, err := mosaic.GenerateKey()
	require.NoError(t, err)

	r, err := mosaic.NewRecord(mosaic.RecordOptions{
		SecretKey: sk,
		Kind:      kind.Example,
		Timestamp: timestamp.Now(),
		Payload:   []byte("roundtrip"),
	})
	require.NoError(t, err)

	parsed, err := mosaic.ParseRecord(r.Bytes())
	require.NoError(t, err)
	require.Equal(t, r.Bytes(), parsed.Bytes())
}

func TestNewFilterMatchesRecord(t *testing.T) {
	sk, err := mosaic.GenerateKey()
	require.NoError(t, err)

	r, err := mosaic.NewRecord(mosaic.RecordOptions{
		SecretKey: sk,
		Kind:      kind.Example,
		Timestamp: timestamp.Now(),
		Payload:   []byte("matched"),
	})
	require.NoError(t, err)

	f, err := mosaic.NewFilter(func(b *filter.Builder) error {
		return b.Kinds([]kind.Kind{kind.Example})
	})
	require.NoError(t, err)

	ok, err := f.Matches(r)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNewReferenceToRecordChoosesByDuplicateHandling(t *testing.T) {
	sk, err := mosaic.GenerateKey()
	require.NoError(t, err)

	replaceable, err := mosaic.NewRecord(mosaic.RecordOptions{
		SecretKey: sk,
		Kind:      kind.Profile, // Replaceable
		Timestamp: timestamp.Now(),
		Payload:   []byte("p"),
	})
	require.NoError(t, err)

	ref := mosaic.NewReferenceToRecord(replaceable)
	require.True(t, ref.IsAddress())
}
