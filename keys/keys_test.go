package keys

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-proto/mosaic-core/errs"
)

func TestSecretKey_SignVerifyRoundTrip(t *testing.T) {
	sk, err := Generate()
	require.NoError(t, err)

	pk := sk.PublicKey()
	msg := []byte("hello world")
	sig := sk.Sign(msg)

	require.Len(t, sig, 64)
	require.True(t, ed25519.Verify(pk.Ed25519(), msg, sig))

	sig[0] ^= 0xFF
	require.False(t, ed25519.Verify(pk.Ed25519(), msg, sig))
}

func TestSecretKey_PrintableRoundTrip(t *testing.T) {
	sk, err := Generate()
	require.NoError(t, err)

	printable := sk.Printable()
	got, err := ParseSecretKey(printable)
	require.NoError(t, err)
	require.True(t, sk.Equal(got))
}

func TestPublicKey_PrintableRoundTrip(t *testing.T) {
	sk, err := Generate()
	require.NoError(t, err)
	pk := sk.PublicKey()

	printable := pk.String()
	got, err := ParsePublicKey(printable)
	require.NoError(t, err)
	require.True(t, bytes.Equal(pk.Bytes(), got.Bytes()))
}

func TestEncryptedSecretKey_RoundTrip(t *testing.T) {
	sk, err := Generate()
	require.NoError(t, err)

	enc, err := FromSecretKey(sk, "testing123", 14)
	require.NoError(t, err)
	require.Len(t, enc.Bytes(), EncryptedSecretKeySize)

	got, err := enc.ToSecretKey("testing123")
	require.NoError(t, err)
	require.True(t, sk.Equal(got))

	_, err = enc.ToSecretKey("wrongpassword")
	require.ErrorIs(t, err, errs.ErrBadPassword)
}

func TestEncryptedSecretKey_RejectsExcessiveLogN(t *testing.T) {
	sk, _ := Generate()
	_, err := FromSecretKey(sk, "pw", 23)
	require.Error(t, err)
}

func TestEncryptedSecretKey_PrintableRoundTrip(t *testing.T) {
	sk, _ := Generate()
	enc, err := FromSecretKey(sk, "pw", 12)
	require.NoError(t, err)

	printable := enc.Printable()
	got, err := ParseEncryptedSecretKey(printable)
	require.NoError(t, err)
	require.Equal(t, enc, got)
}
