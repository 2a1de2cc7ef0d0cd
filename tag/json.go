package tag

import "encoding/json"

type jsonTag struct {
	Type    uint16 `json:"type"`
	DataLen int    `json:"data_len"`
	Data    []byte `json:"data"`
}

// DebugJSON renders the set's tags as a JSON array for logs and test
// diagnostics. It is not a wire format; payload bytes come out base64
// encoded the way encoding/json renders byte slices.
func (ts TagSet) DebugJSON() string {
	out := make([]jsonTag, 0, ts.Count())
	for tg := range ts.All() {
		out = append(out, jsonTag{
			Type:    uint16(tg.Type()),
			DataLen: tg.DataLen(),
			Data:    tg.Data(),
		})
	}

	b, _ := json.Marshal(out)

	return string(b)
}
