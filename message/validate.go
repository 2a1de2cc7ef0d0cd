package message

import (
	"bytes"
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/filter"
	"github.com/mosaic-proto/mosaic-core/internal/hash"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/reference"
	"github.com/mosaic-proto/mosaic-core/record"
)

// queryHeaderSize is the fixed prefix shared by Query and Subscribe
// bodies: limit(2 LE) ++ reserved(6), before the embedded Filter.
const queryHeaderSize = 8

// validateBody dispatches to the schema check for m's declared type,
// recomputing m's expected body shape the way record.Parse and
// filter.Parse recompute their own section lengths.
func validateBody(m Message) error {
	body := m.Body()

	switch m.Type() {
	case TypeHello, TypeHelloAck:
		return validateAppIDs(body)

	case TypeGet:
		return validateReferenceList(body)

	case TypeQuery, TypeSubscribe:
		return validateQuery(body)

	case TypeUnsubscribe, TypeLocallyComplete, TypeQueryClosed, TypeClosing:
		if len(body) != 0 {
			return errs.At(errs.ErrInvalidMessage)
		}

		return nil

	case TypeSubmission, TypeRecord:
		_, err := record.Parse(body)

		return err

	case TypeBlobGet:
		if len(body) != 32 {
			return errs.At(errs.ErrInvalidMessage)
		}

		return nil

	case TypeBlobSubmission:
		return validateBlob(body)

	case TypeBlobResult:
		return validateBlob(body)

	case TypeBlobSubmissionResult:
		if len(body) != 32 {
			return errs.At(errs.ErrInvalidMessage)
		}

		return nil

	case TypeDhtLookup:
		if m.Code() > 1 {
			return errs.At(errs.ErrInvalidMessage)
		}
		if len(body) != 32 {
			return errs.At(errs.ErrInvalidMessage)
		}

		return nil

	case TypeDhtResponse:
		return nil

	case TypeSubmissionResult:
		return validateSubmissionResult(body)

	default:
		return errs.At(errs.ErrInvalidMessage)
	}
}

func validateAppIDs(body []byte) error {
	if len(body)%4 != 0 {
		return errs.At(errs.ErrInvalidMessage)
	}

	return nil
}

func validateReferenceList(body []byte) error {
	if len(body)%reference.Size != 0 {
		return errs.At(errs.ErrInvalidMessage)
	}

	for i := 0; i < len(body); i += reference.Size {
		if _, err := reference.NewReference(body[i : i+reference.Size]); err != nil {
			return err
		}
	}

	return nil
}

func validateQuery(body []byte) error {
	if len(body) < queryHeaderSize {
		return errs.At(errs.ErrEndOfInput)
	}

	for _, r := range body[2:8] {
		if r != 0 {
			return errs.At(errs.ErrInvalidMessage)
		}
	}

	_, err := filter.Parse(body[queryHeaderSize:])

	return err
}

func validateBlob(body []byte) error {
	if len(body) < 32 {
		return errs.At(errs.ErrEndOfInput)
	}

	want := body[0:32]
	blob := body[32:]
	got := hash.Digest32(blob)
	if !bytes.Equal(want, got[:]) {
		return errs.At(errs.ErrHashMismatch)
	}

	return nil
}

func validateSubmissionResult(body []byte) error {
	if len(body) != 32 {
		return errs.At(errs.ErrInvalidMessage)
	}
	if body[0]&0x80 != 0 {
		return errs.At(errs.ErrNotAnId)
	}

	return nil
}

// Limit returns the Query/Subscribe body's result-count cap.
func (m Message) Limit() uint16 {
	return binary.LittleEndian.Uint16(m.Body()[0:2])
}

// Filter returns the Query/Subscribe body's embedded Filter.
func (m Message) Filter() filter.Filter {
	f, _ := filter.Parse(m.Body()[queryHeaderSize:])

	return f
}

// References returns the Get body's reference list.
func (m Message) References() []reference.Reference {
	body := m.Body()
	out := make([]reference.Reference, 0, len(body)/reference.Size)
	for i := 0; i < len(body); i += reference.Size {
		ref, _ := reference.NewReference(body[i : i+reference.Size])
		out = append(out, ref)
	}

	return out
}

// Record returns the Submission/Record body's embedded Record.
func (m Message) Record() record.Record {
	r, _ := record.Parse(m.Body())

	return r
}

// Hash returns the 32-byte hash carried by BlobGet/BlobSubmission/
// BlobResult/BlobSubmissionResult.
func (m Message) Hash() [32]byte {
	var out [32]byte
	copy(out[:], m.Body()[0:32])

	return out
}

// Blob returns the blob payload carried by BlobSubmission/BlobResult.
func (m Message) Blob() []byte {
	return m.Body()[32:]
}

// PublicKey returns the DhtLookup body's 32-byte public key.
func (m Message) PublicKey() keys.PublicKey {
	pk, _ := keys.NewPublicKey(m.Body())

	return pk
}

// AppIDs returns the Hello/HelloAck body's application id list.
func (m Message) AppIDs() []uint32 {
	body := m.Body()
	out := make([]uint32, 0, len(body)/4)
	for i := 0; i < len(body); i += 4 {
		out = append(out, binary.LittleEndian.Uint32(body[i:i+4]))
	}

	return out
}

// MaxVersion returns Sub2()[0], the protocol version carried by
// Hello/HelloAck.
func (m Message) MaxVersion() byte {
	return m.Sub2()[0]
}

// IdPrefix returns the SubmissionResult body's 32-byte id prefix.
func (m Message) IdPrefix() [32]byte {
	var out [32]byte
	copy(out[:], m.Body())

	return out
}
