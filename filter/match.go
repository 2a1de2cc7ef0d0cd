package filter

import (
	"bytes"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/reference"
	"github.com/mosaic-proto/mosaic-core/tag"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

// MatchableRecord is the minimal view Filter needs of a record to match
// it. record.Record implements this directly; ReceivedAt lets a server
// layer on top of this core supply its own receipt-time bookkeeping
// without this package depending on server policy.
type MatchableRecord interface {
	ID() reference.Id
	Address() reference.Address
	AuthorPublicKey() keys.PublicKey
	SigningPublicKey() keys.PublicKey
	Kind() kind.Kind
	Timestamp() timestamp.Timestamp
	Tags() tag.TagSet
	ReceivedAt() (timestamp.Timestamp, bool)
}

func decodeTagList(payload []byte) []tag.Tag {
	var out []tag.Tag

	offset := 0
	for offset < len(payload) {
		t, n, err := tag.Parse(payload[offset:])
		if err != nil {
			break
		}

		out = append(out, t)
		offset += n
	}

	return out
}

// matches evaluates a single element against r. A returned error of
// ErrInvalidFilterElementForFunc means "this element doesn't apply here"
// (server-only elements matched against a bare record); the caller
// decides whether that's fatal.
func (e Element) matches(r MatchableRecord) (bool, error) {
	payload := e.Payload()

	switch e.Type() {
	case AuthorKeys:
		return matchesKeyList(payload, r.AuthorPublicKey()), nil

	case SigningKeys:
		return matchesKeyList(payload, r.SigningPublicKey()), nil

	case Kinds:
		count := kindsCount(e)
		want := r.Kind().Bytes()
		for i := 0; i < count && (i+1)*8 <= len(payload); i++ {
			if bytes.Equal(payload[i*8:(i+1)*8], want[:]) {
				return true, nil
			}
		}

		return false, nil

	case Timestamps:
		want := r.Timestamp().ToBytes()
		for i := 0; i+8 <= len(payload); i += 8 {
			if bytes.Equal(payload[i:i+8], want[:]) {
				return true, nil
			}
		}

		return false, nil

	case IncludedTags:
		tags := r.Tags()
		for _, want := range decodeTagList(payload) {
			if tags.Contains(want) {
				return true, nil
			}
		}

		return false, nil

	case ExcludedTags:
		tags := r.Tags()
		for _, excluded := range decodeTagList(payload) {
			if tags.Contains(excluded) {
				return false, nil
			}
		}

		return true, nil

	case Since:
		if len(payload) < 8 {
			return false, errs.At(errs.ErrInvalidFilterElement)
		}
		bound, err := timestamp.FromBytes(payload[0:8])
		if err != nil {
			return false, err
		}

		return r.Timestamp() >= bound, nil

	case Until:
		if len(payload) < 8 {
			return false, errs.At(errs.ErrInvalidFilterElement)
		}
		bound, err := timestamp.FromBytes(payload[0:8])
		if err != nil {
			return false, err
		}

		return r.Timestamp() < bound, nil

	case ReceivedSince, ReceivedUntil:
		received, ok := r.ReceivedAt()
		if !ok {
			return false, errs.At(errs.ErrInvalidFilterElementForFunc)
		}
		if len(payload) < 8 {
			return false, errs.At(errs.ErrInvalidFilterElement)
		}
		bound, err := timestamp.FromBytes(payload[0:8])
		if err != nil {
			return false, err
		}
		if e.Type() == ReceivedSince {
			return received >= bound, nil
		}

		return received < bound, nil

	case Exclude:
		idBytes := r.ID().Bytes()[:32]
		addrBytes := r.Address().Bytes()[:32]
		for i := 0; i+32 <= len(payload); i += 32 {
			prefix := payload[i : i+32]
			if bytes.Equal(prefix, idBytes) || bytes.Equal(prefix, addrBytes) {
				return false, nil
			}
		}

		return true, nil

	default:
		return false, &errs.UnknownFilterElementError{Type: byte(e.Type())}
	}
}

func matchesKeyList(payload []byte, want keys.PublicKey) bool {
	for i := 0; i+keys.Size <= len(payload); i += keys.Size {
		if bytes.Equal(payload[i:i+keys.Size], want.Bytes()) {
			return true
		}
	}

	return false
}
