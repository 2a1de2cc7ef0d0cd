package zbase32

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 16, 32, 48, 58} {
		data := make([]byte, n)
		_, _ = rand.Read(data)

		enc := Encode(data)
		dec, err := Decode(enc)
		require.NoError(t, err)
		require.True(t, bytes.Equal(data, dec))
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	_, err := Decode("!!!!")
	require.Error(t, err)
}

func TestTyped_RoundTrip(t *testing.T) {
	data := make([]byte, 32)
	_, _ = rand.Read(data)

	printable := EncodeTyped(PrefixPublicKey, data)
	require.Contains(t, printable, PrefixPublicKey)

	got, err := DecodeTyped(PrefixPublicKey, printable, 32)
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, got))

	_, err = DecodeTyped(PrefixSecretKey, printable, 32)
	require.Error(t, err)

	_, err = DecodeTyped(PrefixPublicKey, printable, 48)
	require.Error(t, err)
}
