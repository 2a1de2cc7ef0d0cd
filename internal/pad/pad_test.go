package pad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTo8(t *testing.T) {
	cases := map[int]int{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 253: 256}
	for in, want := range cases {
		require.Equal(t, want, To8(in))
	}
}

func TestIsZero(t *testing.T) {
	require.True(t, IsZero(nil))
	require.True(t, IsZero(make([]byte, 4)))
	require.False(t, IsZero([]byte{0, 0, 1}))
}
