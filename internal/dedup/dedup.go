// Package dedup tracks byte-slice keys to detect duplicates during
// incremental construction, the same role mebo's internal/collision.Tracker
// plays for metric names: a hash-indexed set with O(1) amortized lookups,
// re-themed here from metric-name collisions to 48-byte reference and raw
// tag de-duplication in filter/message builders.
package dedup

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Tracker de-duplicates exact byte-slice keys using xxHash64 as a bucket
// index, resolving hash collisions with a byte-exact comparison.
type Tracker struct {
	buckets map[uint64][][]byte
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{buckets: make(map[uint64][][]byte)}
}

// Add reports whether key has already been tracked (byte-exact), and begins
// tracking it if not.
func (t *Tracker) Add(key []byte) bool {
	h := xxhash.Sum64(key)
	for _, existing := range t.buckets[h] {
		if bytes.Equal(existing, key) {
			return true
		}
	}

	cp := make([]byte, len(key))
	copy(cp, key)
	t.buckets[h] = append(t.buckets[h], cp)

	return false
}

// Count returns the number of distinct keys tracked so far.
func (t *Tracker) Count() int {
	n := 0
	for _, v := range t.buckets {
		n += len(v)
	}

	return n
}

// Reset clears all tracked keys, allowing the Tracker to be reused.
func (t *Tracker) Reset() {
	t.buckets = make(map[uint64][][]byte)
}
