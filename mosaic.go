// Package mosaic provides convenient top-level wrappers around this
// module's sub-packages for the most common flows: generating a key,
// building and signing a Record, constructing a Filter, and framing a
// Message. For advanced usage and fine-grained control, use the
// record, filter, message, keys, and bootstrap packages directly.
//
// # Basic usage
//
// Generating a key and signing a record:
//
//	sk, _ := mosaic.GenerateKey()
//	r, _ := mosaic.NewRecord(mosaic.RecordOptions{
//	    SecretKey: sk,
//	    Kind:      kind.Example,
//	    Timestamp: timestamp.Now(),
//	    Payload:   []byte("hello"),
//	})
//
// Matching records against a filter:
//
//	f, _ := mosaic.NewFilter(func(b *filter.Builder) error {
//	    return b.AuthorKeys([]keys.PublicKey{sk.PublicKey()})
//	})
//	ok, _ := f.Matches(r)
//
// # Package structure
//
// This package is a thin convenience layer; it imports record, filter,
// message, keys, and bootstrap but adds no behavior of its own beyond
// reducing boilerplate for single-shot call sites.
package mosaic

import (
	"github.com/mosaic-proto/mosaic-core/filter"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/record"
	"github.com/mosaic-proto/mosaic-core/reference"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

// GenerateKey creates a new random Ed25519 SecretKey.
//
// Example:
//
//	sk, err := mosaic.GenerateKey()
func GenerateKey() (keys.SecretKey, error) {
	return keys.Generate()
}

// RecordOptions collects the arguments NewRecord needs to build and sign
// a Record. SecretKey and Kind are required; Timestamp defaults to
// timestamp.Now() when zero.
type RecordOptions struct {
	SecretKey keys.SecretKey
	Kind      kind.Kind
	Timestamp timestamp.Timestamp
	Tags      []byte
	Payload   []byte
	Compress  bool

	// Deterministic, when true, derives the Record's Address from
	// NonceMaterial instead of drawing a random nonce, so rebuilding a
	// record with the same material yields the same address (replaceable
	// records per record.AddressDeterministic).
	Deterministic bool
	NonceMaterial []byte
}

// NewRecord builds and signs a Record from opts, authored and signed by
// opts.SecretKey. Equivalent to constructing a record.Parts directly and
// calling Build, with AddressMode chosen from opts.Deterministic and
// Timestamp defaulted to Now.
func NewRecord(opts RecordOptions) (record.Record, error) {
	ts := opts.Timestamp
	if ts == 0 {
		ts = timestamp.Now()
	}

	mode := record.AddressRandom
	if opts.Deterministic {
		mode = record.AddressDeterministic
	}

	parts := record.Parts{
		SecretKey:       &opts.SecretKey,
		AddressMode:     mode,
		AuthorPublicKey: opts.SecretKey.PublicKey(),
		Kind:            opts.Kind,
		NonceMaterial:   opts.NonceMaterial,
		Timestamp:       ts,
		Tags:            opts.Tags,
		Payload:         opts.Payload,
		Compress:        opts.Compress,
	}

	return parts.Build()
}

// ParseRecord parses and structurally validates b as a Record, without
// verifying its signature. Call Record.Verify separately once the record
// is accepted from an untrusted source.
func ParseRecord(b []byte) (record.Record, error) {
	return record.Parse(b)
}

// NewFilter runs build against a fresh filter.Builder and returns the
// resulting Filter, reducing the common "build one, check the error,
// build()" sequence to a single call.
//
// Example:
//
//	f, err := mosaic.NewFilter(func(b *filter.Builder) error {
//	    return b.Kinds([]kind.Kind{kind.Example})
//	})
func NewFilter(build func(*filter.Builder) error) (filter.Filter, error) {
	b := filter.NewBuilder()
	if err := build(b); err != nil {
		return nil, err
	}

	return b.Build()
}

// ParseFilter parses and structurally validates b as a Filter.
func ParseFilter(b []byte) (filter.Filter, error) {
	return filter.Parse(b)
}

// NewReferenceToRecord returns the Reference that names r the way a
// Get request should: by its group Address when r's Kind is
// Replaceable or Versioned (so a later record with the same Address
// supersedes it), or by its content-addressed Id when r's Kind is
// Unique.
func NewReferenceToRecord(r record.Record) reference.Reference {
	if r.Kind().DuplicateHandling() == kind.Unique {
		return reference.FromId(r.Id())
	}

	return reference.FromAddress(r.Address())
}
