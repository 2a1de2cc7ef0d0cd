package message

// Type identifies a frame's schema and direction.
type Type uint8

// Client-to-server (and bidirectional) types.
const (
	TypeGet            Type = 0x01
	TypeQuery          Type = 0x02
	TypeSubscribe      Type = 0x03
	TypeUnsubscribe    Type = 0x04
	TypeSubmission     Type = 0x05
	TypeDhtLookup      Type = 0x06
	TypeBlobSubmission Type = 0x07
	TypeBlobGet        Type = 0x08
	TypeHello          Type = 0x10
)

// Server-to-client types.
const (
	TypeRecord               Type = 0x80
	TypeLocallyComplete      Type = 0x81
	TypeQueryClosed          Type = 0x82
	TypeSubmissionResult     Type = 0x83
	TypeDhtResponse          Type = 0x84
	TypeBlobSubmissionResult Type = 0x85
	TypeBlobResult           Type = 0x86
	TypeHelloAck             Type = 0x90
	TypeClosing              Type = 0xFE
)

// ResultCode is the single-byte outcome code carried in the header's code
// byte by every server response type.
type ResultCode uint8

// Success family (1..=8).
const (
	ResultOK           ResultCode = 1
	ResultStored       ResultCode = 2
	ResultDuplicate    ResultCode = 3
	ResultReplaced     ResultCode = 4
	ResultNoNewRecords ResultCode = 8
)

// User-error family (32..=47): malformed request.
const (
	ResultMalformedMessage ResultCode = 32
	ResultMalformedRecord  ResultCode = 33
	ResultMalformedFilter  ResultCode = 34
	ResultUnsupportedKind  ResultCode = 40
)

// User-rejection family (48..=55): well-formed request, policy refusal.
const (
	ResultRejectedPolicy   ResultCode = 48
	ResultRejectedAuth     ResultCode = 49
	ResultRejectedRateLimit ResultCode = 50
)

// Server-error family (64..=79).
const (
	ResultServerError    ResultCode = 64
	ResultServerOverload ResultCode = 65
	ResultServerTimeout  ResultCode = 66
)

// IsSuccess reports whether c falls in the success family.
func (c ResultCode) IsSuccess() bool { return c >= 1 && c <= 8 }

// IsUserError reports whether c falls in the user-error family.
func (c ResultCode) IsUserError() bool { return c >= 32 && c <= 47 }

// IsUserRejection reports whether c falls in the user-rejection family.
func (c ResultCode) IsUserRejection() bool { return c >= 48 && c <= 55 }

// IsServerError reports whether c falls in the server-error family.
func (c ResultCode) IsServerError() bool { return c >= 64 && c <= 79 }

// IsValid reports whether c falls in any defined family (0 is the
// reserved "no result" default used by request types).
func (c ResultCode) IsValid() bool {
	return c == 0 || c.IsSuccess() || c.IsUserError() || c.IsUserRejection() || c.IsServerError()
}
