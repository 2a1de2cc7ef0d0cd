// Package keyschedule implements the KeySchedule record: an author's
// published list of subordinate keys (signing, encryption, revoked,
// retired), carried as a record of kind.KeySchedule whose payload packs
// one fixed 48-byte entry per key and whose tag set carries a Subkey tag
// per key so servers can index the record by the keys it mentions.
package keyschedule

import (
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/record"
	"github.com/mosaic-proto/mosaic-core/tag"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

// EntrySize is the packed payload size of one schedule entry:
// public_key(32) ++ marker(2 LE) ++ reserved(6) ++ timestamp(8 BE).
const EntrySize = 48

// SubkeyMarker describes the role or status of one key in the schedule.
type SubkeyMarker uint16

const (
	// ActiveSigningKey marks an active Ed25519 signing key.
	ActiveSigningKey SubkeyMarker = 0x00

	// ActiveEncryptionKey marks an active X25519 encryption key.
	ActiveEncryptionKey SubkeyMarker = 0x01

	// RevokedAll marks a key revoked for all time.
	RevokedAll SubkeyMarker = 0x40

	// RevokedPast marks a key revoked for records before the entry's
	// timestamp.
	RevokedPast SubkeyMarker = 0x41

	// OutOfUse marks a key retired as of the entry's timestamp, but not
	// revoked.
	OutOfUse SubkeyMarker = 0x4F

	// ActiveNostrKey marks an active Nostr key, interpreted under
	// secp256k1.
	ActiveNostrKey SubkeyMarker = 0x80
)

// IsDefined reports whether m is a marker this module knows.
func (m SubkeyMarker) IsDefined() bool {
	switch m {
	case ActiveSigningKey, ActiveEncryptionKey, RevokedAll, RevokedPast, OutOfUse, ActiveNostrKey:
		return true
	default:
		return false
	}
}

// RequiresTimestamp reports whether an entry with marker m must carry a
// non-zero timestamp.
func (m SubkeyMarker) RequiresTimestamp() bool {
	return m == RevokedAll || m == RevokedPast
}

// UsesTimestamp reports whether an entry with marker m gives its
// timestamp meaning; other entries have their timestamp zeroed when the
// schedule is built.
func (m SubkeyMarker) UsesTimestamp() bool {
	return m == RevokedAll || m == RevokedPast || m == OutOfUse
}

// Entry is one key in a schedule.
type Entry struct {
	PublicKey keys.PublicKey
	Marker    SubkeyMarker
	Timestamp timestamp.Timestamp
}

// Verify checks that the entry's marker is defined and that markers
// requiring a timestamp have one.
func (e Entry) Verify() error {
	if !e.Marker.IsDefined() {
		return &errs.UndefinedSubkeyMarkerError{Marker: uint16(e.Marker)}
	}
	if e.Marker.RequiresTimestamp() && e.Timestamp == 0 {
		return errs.At(errs.ErrSubkeyMarkerRequiresTimestamp)
	}

	return nil
}

// Schedule is a validated list of entries.
type Schedule struct {
	entries []Entry
}

// New validates entries into a Schedule, zeroing the timestamp of any
// entry whose marker doesn't use one.
func New(entries []Entry) (Schedule, error) {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if err := e.Verify(); err != nil {
			return Schedule{}, err
		}

		if !e.Marker.UsesTimestamp() {
			e.Timestamp = 0
		}
		out[i] = e
	}

	return Schedule{entries: out}, nil
}

// Entries returns the schedule's entries.
func (s Schedule) Entries() []Entry {
	return s.entries
}

// ToRecord builds and signs a kind.KeySchedule record carrying the
// schedule: one packed EntrySize payload chunk and one Subkey tag per
// entry, authored and signed by sk.
func (s Schedule) ToRecord(sk keys.SecretKey, ts timestamp.Timestamp) (record.Record, error) {
	tags := tag.NewBuilder()
	payload := make([]byte, 0, len(s.entries)*EntrySize)

	for _, e := range s.entries {
		if err := tags.AppendRaw(tag.NewSubkey(e.PublicKey)); err != nil {
			return nil, err
		}

		var chunk [EntrySize]byte
		copy(chunk[0:32], e.PublicKey.Bytes())
		binary.LittleEndian.PutUint16(chunk[32:34], uint16(e.Marker))
		tsb := e.Timestamp.ToBytes()
		copy(chunk[40:48], tsb[:])

		payload = append(payload, chunk[:]...)
	}

	parts := record.Parts{
		SecretKey:       &sk,
		AddressMode:     record.AddressRandom,
		AuthorPublicKey: sk.PublicKey(),
		Kind:            kind.KeySchedule,
		Timestamp:       ts,
		Tags:            tags.Build(),
		Payload:         payload,
	}

	return parts.Build()
}

// FromRecord verifies r, checks its kind, and unpacks its payload into a
// Schedule. Entries are not re-validated: a schedule read off the wire
// may carry marker values defined by a newer revision than this module.
func FromRecord(r record.Record) (Schedule, error) {
	if err := r.Verify(); err != nil {
		return Schedule{}, err
	}
	if r.Kind() != kind.KeySchedule {
		return Schedule{}, errs.At(errs.ErrWrongKind)
	}

	payload, err := r.Payload()
	if err != nil {
		return Schedule{}, err
	}
	if len(payload)%EntrySize != 0 {
		return Schedule{}, errs.At(errs.ErrInvalidLength)
	}

	entries := make([]Entry, 0, len(payload)/EntrySize)
	for i := 0; i+EntrySize <= len(payload); i += EntrySize {
		chunk := payload[i : i+EntrySize]

		pk, err := keys.NewPublicKey(chunk[0:32])
		if err != nil {
			return Schedule{}, err
		}

		ts, err := timestamp.FromBytes(chunk[40:48])
		if err != nil {
			return Schedule{}, err
		}

		entries = append(entries, Entry{
			PublicKey: pk,
			Marker:    SubkeyMarker(binary.LittleEndian.Uint16(chunk[32:34])),
			Timestamp: ts,
		})
	}

	return Schedule{entries: entries}, nil
}
