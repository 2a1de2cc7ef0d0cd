package message

import (
	"encoding/binary"

	"github.com/mosaic-proto/mosaic-core/errs"
)

// HeaderSize is the fixed 8-byte frame header every message begins with:
// type(1) ++ code(1) ++ sub2(2) ++ length(4 LE).
const HeaderSize = 8

// Message is a borrowed view over one encoded frame.
type Message []byte

// Type returns the frame's message type.
func (m Message) Type() Type {
	return Type(m[0])
}

// Code returns the frame header's code byte. Its meaning is type-specific:
// a result code for server responses, a boolean flag for DhtLookup, or
// unused (always 0) for plain client requests.
func (m Message) Code() byte {
	return m[1]
}

// ResultCode reinterprets Code as a ResultCode, for the response types
// that carry one.
func (m Message) ResultCode() ResultCode {
	return ResultCode(m[1])
}

// Sub2 returns the header's 2-byte type-specific field, raw.
func (m Message) Sub2() [2]byte {
	return [2]byte{m[2], m[3]}
}

// QueryID returns Sub2 reinterpreted as a query id, for the types that
// carry one (Get, Query, Subscribe, Unsubscribe, Record, LocallyComplete,
// QueryClosed).
func (m Message) QueryID() [2]byte {
	return m.Sub2()
}

// Length returns the declared total frame length, header included.
func (m Message) Length() uint32 {
	return binary.LittleEndian.Uint32(m[4:8])
}

// Body returns the bytes following the fixed header.
func (m Message) Body() []byte {
	return m[HeaderSize:]
}

// Bytes returns the raw encoded frame.
func (m Message) Bytes() []byte {
	return m
}

func newHeader(t Type, code byte, sub2 [2]byte, bodyLen int) []byte {
	h := make([]byte, HeaderSize, HeaderSize+bodyLen)
	h[0] = byte(t)
	h[1] = code
	h[2] = sub2[0]
	h[3] = sub2[1]
	binary.LittleEndian.PutUint32(h[4:8], uint32(HeaderSize+bodyLen))

	return h
}

// Parse validates and wraps b as a Message: the declared length must
// match len(b) exactly, and the body must satisfy the structural schema
// for the frame's type (fixed size, chunked elements, or a
// type-specific minimum plus embedded Record/Filter validation).
func Parse(b []byte) (Message, error) {
	if len(b) < HeaderSize {
		return nil, errs.At(errs.ErrEndOfInput)
	}

	length := binary.LittleEndian.Uint32(b[4:8])
	if int(length) != len(b) {
		return nil, errs.At(errs.ErrInvalidMessage)
	}

	m := Message(b)
	if err := validateBody(m); err != nil {
		return nil, err
	}

	return m, nil
}
