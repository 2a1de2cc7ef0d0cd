package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagSet_BuildIterateRoundTrip(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Append(NostrSister, make([]byte, payloadOffset+32)))
	require.NoError(t, b.Append(Subkey, make([]byte, payloadOffset+32)))

	ts := b.Build()
	require.Equal(t, 2, ts.Count())

	var types []Type
	for tg := range ts.All() {
		types = append(types, tg.Type())
	}
	require.Equal(t, []Type{NostrSister, Subkey}, types)
}

func TestTagSet_NewTagSetValidates(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Append(Root, make([]byte, payloadOffset+8+48)))

	ts, err := NewTagSet(b.Build().Bytes())
	require.NoError(t, err)
	require.Equal(t, 1, ts.Count())

	// A zero tail is padding (how a record fills its tag section out to
	// 8 bytes) and doesn't change what iteration yields.
	padded, err := NewTagSet(append(b.Build().Bytes(), 0x00, 0x00, 0x00))
	require.NoError(t, err)
	require.Equal(t, 1, padded.Count())

	// A non-zero tail that doesn't parse as a tag is not padding.
	_, err = NewTagSet(append(b.Build().Bytes(), 0x00, 0x00, 0x07))
	require.Error(t, err)
}

func TestTagSet_DebugJSON(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Append(Subkey, []byte{1, 2, 3}))

	out := b.Build().DebugJSON()
	require.Contains(t, out, `"type":16`)
	require.Contains(t, out, `"data_len":3`)
}

func TestTagSet_Contains(t *testing.T) {
	raw, err := New(Subkey, make([]byte, payloadOffset+32))
	require.NoError(t, err)

	b := NewBuilder()
	require.NoError(t, b.AppendRaw(raw))
	ts := b.Build()

	require.True(t, ts.Contains(Tag(raw)))
}
