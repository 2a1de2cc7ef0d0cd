package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_Add(t *testing.T) {
	tr := NewTracker()

	require.False(t, tr.Add([]byte("a")))
	require.False(t, tr.Add([]byte("b")))
	require.True(t, tr.Add([]byte("a")))
	require.Equal(t, 2, tr.Count())

	tr.Reset()
	require.Equal(t, 0, tr.Count())
	require.False(t, tr.Add([]byte("a")))
}
