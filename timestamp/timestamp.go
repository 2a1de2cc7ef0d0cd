// Package timestamp implements the Mosaic core's nanosecond-resolution,
// leap-second-aware timestamp: an i64 count of nanoseconds since the Unix
// epoch, serialized as 8 big-endian bytes so that byte-wise comparison
// sorts chronologically.
package timestamp

import (
	"encoding/binary"
	"time"

	"github.com/mosaic-proto/mosaic-core/errs"
)

// Timestamp is nanoseconds since the Unix epoch. It is always non-negative,
// which guarantees byte[0]'s high bit is 0 — the invariant Id relies on to
// discriminate itself from Address in a Reference.
type Timestamp int64

// Min and Max bound the representable range.
const (
	Min Timestamp = 0
	Max Timestamp = Timestamp(1<<63 - 1)
)

// Now returns the current wall-clock time as a Timestamp. It does not
// consult the leap-second table: the system clock already reports
// non-repeating nanoseconds since the epoch.
func Now() Timestamp {
	// Now is never negative on any supported platform; overflow is not a
	// practical concern until the year 2262.
	return Timestamp(time.Now().UnixNano())
}

// FromNanoseconds builds a Timestamp from a raw nanosecond count, rejecting
// negative values.
func FromNanoseconds(n int64) (Timestamp, error) {
	if n < 0 {
		return 0, errs.At(errs.ErrTimeOutOfRange)
	}

	return Timestamp(n), nil
}

// FromUnixtime builds a Timestamp from a (seconds, subsecond-nanoseconds)
// pair, correcting for every leap second strictly before secs so that the
// result is monotonically comparable across a leap-second boundary.
func FromUnixtime(secs int64, subsecNanos uint32) (Timestamp, error) {
	if secs < 0 {
		return 0, errs.At(errs.ErrTimeOutOfRange)
	}
	if secs > LeapExpiry {
		return 0, errs.At(errs.ErrTimeIsBeyondLeapSecondData)
	}

	leaps := countBefore(leapBoundaries, secs)
	adjustedSecs := secs + leaps

	return Timestamp(adjustedSecs*1_000_000_000 + int64(subsecNanos)), nil
}

// ToUnixtime is the exact inverse of FromUnixtime for any value FromUnixtime
// could have produced.
func (t Timestamp) ToUnixtime() (secs int64, subsecNanos uint32) {
	total := int64(t)
	adjustedSecs := total / 1_000_000_000
	subsec := total % 1_000_000_000

	leaps := countBefore(adjustedLeapBoundaries, adjustedSecs)

	return adjustedSecs - leaps, uint32(subsec)
}

// FromBytes parses a Timestamp from its 8-byte big-endian wire form.
func FromBytes(b []byte) (Timestamp, error) {
	if len(b) != 8 {
		return 0, errs.At(errs.ErrWrongLength)
	}

	n := int64(binary.BigEndian.Uint64(b))
	if n < 0 {
		return 0, errs.At(errs.ErrTimeOutOfRange)
	}

	return Timestamp(n), nil
}

// ToBytes serializes the Timestamp as 8 big-endian bytes.
func (t Timestamp) ToBytes() [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], uint64(t))

	return out
}

// ToInverseBytes serializes (Max - t) as 8 big-endian bytes, useful as a
// sort key for reverse-chronological ordering.
func (t Timestamp) ToInverseBytes() [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], uint64(int64(Max)-int64(t)))

	return out
}

// Nanoseconds returns the raw nanosecond count since the Unix epoch.
func (t Timestamp) Nanoseconds() int64 {
	return int64(t)
}

// Time converts the Timestamp to a time.Time in UTC, ignoring the
// leap-second table (time.Time has no concept of leap seconds either).
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}
