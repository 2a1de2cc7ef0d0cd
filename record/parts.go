package record

import (
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/internal/hash"
	"github.com/mosaic-proto/mosaic-core/internal/pad"
	"github.com/mosaic-proto/mosaic-core/keys"
	"github.com/mosaic-proto/mosaic-core/kind"
	"github.com/mosaic-proto/mosaic-core/reference"
	"github.com/mosaic-proto/mosaic-core/tag"
	"github.com/mosaic-proto/mosaic-core/timestamp"
)

// AddressMode selects how Parts derives a record's Address.
type AddressMode int

const (
	AddressRandom AddressMode = iota
	AddressDeterministic
	AddressProvided
)

// PreSigned carries a signature produced outside this package (e.g. by a
// hardware signer), together with the public key it verifies under.
type PreSigned struct {
	PublicKey keys.PublicKey
	Signature []byte
}

// Parts describes how to build a Record: how to sign, how to address,
// and the record's content. Exactly one of SecretKey or PreSigned should
// be set.
type Parts struct {
	SecretKey *keys.SecretKey
	PreSigned *PreSigned

	AddressMode     AddressMode
	Address         reference.Address // used when AddressMode == AddressProvided
	AuthorPublicKey keys.PublicKey    // used when AddressMode != AddressProvided
	Kind            kind.Kind
	NonceMaterial   []byte // used when AddressMode == AddressDeterministic

	Timestamp timestamp.Timestamp // zero means "use timestamp.Now()"
	Flags     Flags
	Tags      tag.TagSet
	Payload   []byte
	Compress  bool
}

// Build assembles, signs, and validates a Record from p.
func (p Parts) Build() (Record, error) {
	addr, err := p.resolveAddress()
	if err != nil {
		return nil, err
	}

	ts := p.Timestamp
	if ts == 0 {
		ts = timestamp.Now()
	}

	payload := p.Payload
	flags := p.Flags
	if p.Compress {
		payload = compressZstd(payload)
		flags |= FlagZstd
	}
	if len(payload) > MaxPayload {
		return nil, errs.At(errs.ErrRecordTooLong)
	}

	signingPubKey, err := p.signingPublicKey()
	if err != nil {
		return nil, err
	}

	paddedTagLen := pad.To8(len(p.Tags))
	paddedPayloadLen := pad.To8(len(payload))
	if paddedTagLen > 1<<16-1 {
		return nil, errs.At(errs.ErrRecordTooLong)
	}

	buf := make([]byte, HeaderSize+paddedTagLen+paddedPayloadLen)

	copy(buf[offSigningKey:offSigningKey+keys.Size], signingPubKey.Bytes())
	copy(buf[offAddress:offAddress+reference.Size], addr.Bytes())

	tsBytes := ts.ToBytes()
	copy(buf[offTimestamp:offTimestamp+8], tsBytes[:])

	binary.LittleEndian.PutUint16(buf[offFlags:offFlags+2], uint16(flags))
	binary.LittleEndian.PutUint16(buf[offTagLen:offTagLen+2], uint16(paddedTagLen))
	binary.LittleEndian.PutUint32(buf[offPayloadLen:offPayloadLen+4], uint32(len(payload)))

	copy(buf[HeaderSize:HeaderSize+len(p.Tags)], p.Tags)
	copy(buf[HeaderSize+paddedTagLen:HeaderSize+paddedTagLen+len(payload)], payload)

	digest := hash.Digest32(buf[signedRegionOffset:])

	sig, err := p.signature(digest[:])
	if err != nil {
		return nil, err
	}
	if len(sig) != sigSize {
		return nil, errs.At(errs.ErrInvalidLength)
	}
	copy(buf[offSignature:offSignature+sigSize], sig)

	return Parse(buf)
}

func (p Parts) resolveAddress() (reference.Address, error) {
	switch p.AddressMode {
	case AddressProvided:
		return p.Address, nil
	case AddressDeterministic:
		return reference.NewDeterministic(p.AuthorPublicKey, p.Kind, p.NonceMaterial), nil
	default:
		return reference.NewRandom(p.AuthorPublicKey, p.Kind)
	}
}

func (p Parts) signingPublicKey() (keys.PublicKey, error) {
	switch {
	case p.SecretKey != nil:
		return p.SecretKey.PublicKey(), nil
	case p.PreSigned != nil:
		return p.PreSigned.PublicKey, nil
	default:
		return keys.PublicKey{}, errs.At(errs.ErrMissingSigner)
	}
}

func (p Parts) signature(digest []byte) ([]byte, error) {
	switch {
	case p.SecretKey != nil:
		return p.SecretKey.Sign(digest), nil
	case p.PreSigned != nil:
		return p.PreSigned.Signature, nil
	default:
		return nil, errs.At(errs.ErrMissingSigner)
	}
}
