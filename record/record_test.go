package record_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/record"
	"github.com/mosaic-proto/mosaic-core/tag"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

func TestBuildAndVerify(t *testing.T) {
	var seed [32]byte
	for i := range seed {
		seed[i] = 0x01
	}
	sk, err := keys.NewSecretKey(seed[:])
	require.NoError(t, err)

	ts, err := timestamp.FromNanoseconds(1_732_950_228_100_000_000)
	require.NoError(t, err)

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.MicroblogRoot,
		Timestamp:       ts,
		Payload:         []byte("Hello World!"),
	}

	r, err := parts.Build()
	require.NoError(t, err)
	require.NoError(t, r.Verify())

	require.Equal(t, []byte("Hello World!"), r.PayloadBytes())
	require.Equal(t, ts, r.Id().Timestamp())
	require.Equal(t, sk.PublicKey(), r.SigningPublicKey())
	require.Equal(t, kind.MicroblogRoot, r.Kind())
}

func TestParseRoundTrip(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.Example,
		Timestamp:       timestamp.Now(),
		Payload:         []byte("payload bytes"),
	}

	r, err := parts.Build()
	require.NoError(t, err)

	parsed, err := record.Parse(r.Bytes())
	require.NoError(t, err)
	require.Equal(t, r.Bytes(), parsed.Bytes())
	require.NoError(t, parsed.Verify())
}

func TestIdDerivation(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.Example,
		Timestamp:       timestamp.Now(),
		Payload:         []byte("x"),
	}

	r, err := parts.Build()
	require.NoError(t, err)

	id := r.Id()
	require.Equal(t, r.Timestamp(), id.Timestamp())
	require.False(t, id.Bytes()[0]&0x80 != 0, "Id must have MSB clear")
}

func TestVerifyFailsOnBitFlip(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.Example,
		Timestamp:       timestamp.Now(),
		Payload:         []byte("flip me"),
	}

	r, err := parts.Build()
	require.NoError(t, err)

	tampered := append([]byte(nil), r.Bytes()...)
	tampered[len(tampered)-1] ^= 0x01

	parsed, err := record.Parse(tampered)
	require.NoError(t, err)
	require.Error(t, parsed.Verify())
}

func TestParseRejectsReservedBytes(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.Example,
		Timestamp:       timestamp.Now(),
		Payload:         []byte("x"),
	}

	r, err := parts.Build()
	require.NoError(t, err)

	tampered := append([]byte(nil), r.Bytes()...)
	tampered[record.HeaderSize-1] = 0xFF

	_, err = record.Parse(tampered)
	require.Error(t, err)
}

func TestBuildWithTags(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	tb := tag.NewBuilder()
	require.NoError(t, tb.Append(tag.Subkey, sk.PublicKey().Bytes()))

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.Example,
		Timestamp:       timestamp.Now(),
		Tags:            tb.Build(),
		Payload:         []byte("tagged"),
	}

	r, err := parts.Build()
	require.NoError(t, err)
	require.NoError(t, r.Verify())
	require.Equal(t, 1, r.Tags().Count())
}

func TestDeterministicAddressIsStable(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	build := func() (record.Record, error) {
		p := record.Parts{
			SecretKey:       &sk,
			AddressMode:     record.AddressDeterministic,
			AuthorPublicKey: sk.PublicKey(),
			Kind:            kind.Profile,
			NonceMaterial:   []byte("profile-v1"),
			Timestamp:       timestamp.Now(),
			Payload:         []byte("profile bytes"),
		}

		return p.Build()
	}

	r1, err := build()
	require.NoError(t, err)
	r2, err := build()
	require.NoError(t, err)

	require.Equal(t, r1.Address(), r2.Address())
}

func TestDebugJSON(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.MicroblogRoot,
		Timestamp:       timestamp.Now(),
		Payload:         []byte("Hello World!"),
	}

	r, err := parts.Build()
	require.NoError(t, err)

	out := r.DebugJSON()
	require.Contains(t, out, r.Id().Printable())
	require.Contains(t, out, "Hello World!")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	k := decoded["kind"].(map[string]any)
	require.Equal(t, "unique", k["duplicate_handling"])
	require.Equal(t, true, k["content_is_printable"])
}

func TestBuildWithCompression(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i % 7)
	}

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.Example,
		Timestamp:       timestamp.Now(),
		Payload:         payload,
		Compress:        true,
	}

	r, err := parts.Build()
	require.NoError(t, err)
	require.NoError(t, r.Verify())
	require.True(t, r.Flags().IsZstd())

	got, err := r.Payload()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
