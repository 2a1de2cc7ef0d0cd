package record

import (
	"encoding/json"

	"github.com/mosaic-proto/mosaic-core/zbase32"
)

type jsonKind struct {
	AsNumber           uint64 `json:"as_number"`
	ApplicationID      uint32 `json:"application_id"`
	ApplicationKind    uint16 `json:"application_kind"`
	DuplicateHandling  string `json:"duplicate_handling"`
	ReadAccess         string `json:"read_access"`
	ContentIsPrintable bool   `json:"content_is_printable"`
}

type jsonRecord struct {
	Id         string          `json:"id"`
	Address    string          `json:"address"`
	AuthorKey  string          `json:"author_key"`
	SigningKey string          `json:"signing_key"`
	Kind       jsonKind        `json:"kind"`
	Timestamp  int64           `json:"timestamp"`
	Flags      uint16          `json:"flags"`
	Tags       json.RawMessage `json:"tags"`
	Payload    string          `json:"payload,omitempty"`
	PayloadZ32 string          `json:"z32_payload,omitempty"`
	Signature  string          `json:"signature"`
}

// DebugJSON renders the record as a JSON object for logs and test
// diagnostics. It is not a wire format. The payload appears as text when
// the record's Kind marks its content printable, and z-base-32 encoded
// otherwise; a payload that fails to decompress is rendered in its raw
// compressed form.
func (r Record) DebugJSON() string {
	k := r.Kind()

	jr := jsonRecord{
		Id:         r.Id().Printable(),
		Address:    r.Address().Printable(),
		AuthorKey:  r.AuthorPublicKey().String(),
		SigningKey: r.SigningPublicKey().String(),
		Kind: jsonKind{
			AsNumber:           k.ToU64(),
			ApplicationID:      k.ApplicationID(),
			ApplicationKind:    k.ApplicationSpecificKind(),
			DuplicateHandling:  k.DuplicateHandling().String(),
			ReadAccess:         k.ReadAccess().String(),
			ContentIsPrintable: k.IsPrintable(),
		},
		Timestamp: r.Timestamp().Nanoseconds(),
		Flags:     uint16(r.Flags()),
		Tags:      json.RawMessage(r.Tags().DebugJSON()),
		Signature: zbase32.Encode(r.Signature()),
	}

	payload, err := r.Payload()
	if err != nil {
		payload = r.PayloadBytes()
	}
	if k.IsPrintable() {
		jr.Payload = string(payload)
	} else {
		jr.PayloadZ32 = zbase32.Encode(payload)
	}

	b, _ := json.Marshal(jr)

	return string(b)
}
