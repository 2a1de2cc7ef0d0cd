package bootstrap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaic-proto/mosaic-core/bootstrap"
	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/keys"
)

func TestServerBootstrapRoundTrip(t *testing.T) {
	sb, err := bootstrap.NewServerBootstrap([]string{
		"wss://test.example",
		"https://192.168.99.99",
	}, 7)
	require.NoError(t, err)
	require.Equal(t, "S\nwss://test.example\nhttps://192.168.99.99", sb.Encode())

	parsed, err := bootstrap.ParseServerBootstrap(sb.Encode(), 7)
	require.NoError(t, err)
	require.Equal(t, sb, parsed)
}

func TestServerBootstrapNormalizesTrailingSlash(t *testing.T) {
	sb, err := bootstrap.NewServerBootstrap([]string{"wss://test.example/"}, 0)
	require.NoError(t, err)
	require.Equal(t, "S\nwss://test.example", sb.Encode())
}

func TestServerBootstrapRejectsBadScheme(t *testing.T) {
	_, err := bootstrap.NewServerBootstrap([]string{"http://test.example"}, 0)
	require.ErrorIs(t, err, errs.ErrBadScheme)
}

func TestServerBootstrapRejectsMissingScheme(t *testing.T) {
	_, err := bootstrap.NewServerBootstrap([]string{"test.example"}, 0)
	require.Error(t, err)
}

func TestParseServerBootstrapRejectsMalformed(t *testing.T) {
	_, err := bootstrap.ParseServerBootstrap("X\nwss://test.example", 0)
	require.Error(t, err)
}

func TestUserBootstrapRoundTrip(t *testing.T) {
	sk1, err := keys.Generate()
	require.NoError(t, err)
	sk2, err := keys.Generate()
	require.NoError(t, err)

	ub := bootstrap.UserBootstrap{
		Entries: []bootstrap.UserBootstrapEntry{
			{Usage: bootstrap.UsageOutbox | bootstrap.UsageInbox, Server: sk1.PublicKey()},
			{Usage: bootstrap.UsageInbox, Server: sk2.PublicKey()},
		},
		Seq: 3,
	}

	encoded := ub.Encode()
	parsed, err := bootstrap.ParseUserBootstrap(encoded, 3)
	require.NoError(t, err)
	require.Equal(t, ub, parsed)
}

func TestUserBootstrapUsageByte(t *testing.T) {
	sk, err := keys.Generate()
	require.NoError(t, err)

	ub := bootstrap.UserBootstrap{
		Entries: []bootstrap.UserBootstrapEntry{
			{Usage: bootstrap.UsageEncryption, Server: sk.PublicKey()},
		},
	}

	require.Equal(t, byte('4'), ub.Encode()[2])
}

func TestParseUserBootstrapRejectsMalformed(t *testing.T) {
	_, err := bootstrap.ParseUserBootstrap("U\nnotausageandkey", 0)
	require.Error(t, err)
}
