package filter

import (
	"github.com/mosaic-proto/mosaic-core/internal/dedup"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/tag"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

// AuthorKeys appends an AuthorKeys element built from pks.
func (b *Builder) AuthorKeys(pks []keys.PublicKey) error {
	enc, err := NewAuthorKeys(pks)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// SigningKeys appends a SigningKeys element built from pks.
func (b *Builder) SigningKeys(pks []keys.PublicKey) error {
	enc, err := NewSigningKeys(pks)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// Kinds appends a Kinds element built from kinds.
func (b *Builder) Kinds(kinds []kind.Kind) error {
	enc, err := NewKinds(kinds)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// Timestamps appends a Timestamps element built from ts.
func (b *Builder) Timestamps(ts []timestamp.Timestamp) error {
	enc, err := NewTimestamps(ts)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// Since appends a Since element.
func (b *Builder) Since(bound timestamp.Timestamp) error {
	enc, err := NewSince(bound)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// Until appends an Until element.
func (b *Builder) Until(bound timestamp.Timestamp) error {
	enc, err := NewUntil(bound)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// ReceivedSince appends a server-only ReceivedSince element.
func (b *Builder) ReceivedSince(bound timestamp.Timestamp) error {
	enc, err := NewReceivedSince(bound)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// ReceivedUntil appends a server-only ReceivedUntil element.
func (b *Builder) ReceivedUntil(bound timestamp.Timestamp) error {
	enc, err := NewReceivedUntil(bound)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// dedupTags drops byte-exact duplicate tags from tags, preserving order,
// using the same hash-bucketed Tracker mebo's collision tracker is built
// on (internal/dedup, re-themed from metric names to raw tag bytes).
func dedupTags(tags []tag.Tag) []byte {
	tracker := dedup.NewTracker()

	var out []byte
	for _, t := range tags {
		if tracker.Add(t) {
			continue
		}

		out = append(out, t...)
	}

	return out
}

// IncludedTags appends an IncludedTags element built from tags, silently
// dropping byte-exact duplicates (a caller passing the same tag twice
// shouldn't double the element's wire size).
func (b *Builder) IncludedTags(tags []tag.Tag) error {
	enc, err := NewIncludedTags(dedupTags(tags))
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// ExcludedTags appends an ExcludedTags element built from tags, silently
// dropping byte-exact duplicates.
func (b *Builder) ExcludedTags(tags []tag.Tag) error {
	enc, err := NewExcludedTags(dedupTags(tags))
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}

// Exclude appends an Exclude element built from prefixes, silently
// dropping byte-exact duplicate prefixes.
func (b *Builder) Exclude(prefixes [][32]byte) error {
	tracker := dedup.NewTracker()

	deduped := make([][32]byte, 0, len(prefixes))
	for _, p := range prefixes {
		if tracker.Add(p[:]) {
			continue
		}

		deduped = append(deduped, p)
	}

	enc, err := NewExclude(deduped)
	if err != nil {
		return err
	}

	return b.AddElement(enc)
}
