// Package filter implements the Mosaic core's composable predicate
// language: FilterElement, Filter, and record matching.
//
// A Filter is a little-endian u16 total length, six reserved zero bytes,
// then a packed run of word-aligned elements. Every element is
// `type:u8 ++ word_len:u8 ++ reserved[5] ++ extra:u8 ++ data`, occupying
// exactly word_len*8 bytes.
//
// # Matching Semantics
//
// Filter.Matches ANDs its elements together; within one element the listed
// values OR. The positive element kinds (AuthorKeys, SigningKeys, Kinds,
// Timestamps, IncludedTags) each match when the record hits any listed
// value; Since/Until bound the record timestamp; Exclude and ExcludedTags
// are negations. ReceivedSince/ReceivedUntil are server-side bookkeeping —
// matched against a record with no receipt time they are skipped, via the
// MatchableRecord.ReceivedAt hook. An element of unknown type is a hard
// error, never a silent skip.
//
// A filter is "narrow" (Filter.IsNarrow) when at least one positive
// element bounds the matching set; servers use this to refuse unbounded
// subscriptions.
//
// # Construction
//
// Each element kind has a New* constructor enforcing its size invariants
// (at most 63 keys, 254 kinds, 254 timestamps, 254*8 tag bytes); Builder
// accumulates encoded elements and frames them with the container header.
// Key-list and tag-list builders de-duplicate byte-exact repeats rather
// than growing the wire size.
package filter
