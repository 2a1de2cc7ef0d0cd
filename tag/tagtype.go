package tag

// Type identifies what a Tag's payload means. Type 0 is reserved for
// padding and never appears in a valid tag.
type Type uint16

// Well-known tag types, mirroring the core tag registry.
const (
	NotifyPublicKey           Type = 0x01
	Reply                     Type = 0x02
	Root                      Type = 0x03
	NostrSister               Type = 0x08
	Subkey                    Type = 0x10
	ContentSegmentUserMention Type = 0x20
	ContentSegmentServerMention Type = 0x21
	ContentSegmentQuote       Type = 0x22
	ContentSegmentURL         Type = 0x24
	ContentSegmentImage       Type = 0x25
	ContentSegmentVideo       Type = 0x26
)
