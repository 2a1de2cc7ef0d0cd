package kind

// Well-known Kind values for record types defined by this core itself
// (application id 0) and the reference microblog application (application
// id 1), mirroring the constants shipped by the original implementation.
var (
	// KeySchedule tags a record that rotates an author's signing key.
	// Wire value 0x0000_0000_0001_000e.
	KeySchedule = FromParts(0, 0x0001, Replaceable, Everybody, false)

	// Profile tags an author's self-published profile record.
	// Wire value 0x0000_0000_0002_000e.
	Profile = FromParts(0, 0x0002, Replaceable, Everybody, false)

	// Example is a demonstration Kind used in tests and examples.
	// Wire value 0x0000_0063_0001_000e.
	Example = FromParts(0x63, 0x0001, Replaceable, Everybody, false)

	// MicroblogRoot tags a top-level post in the reference microblog app.
	// Wire value 0x0000_0001_0001_001c.
	MicroblogRoot = FromParts(1, 0x0001, Unique, Everybody, true)

	// ReplyComment tags a reply to another record in the reference
	// microblog app. Wire value 0x0000_0001_0002_001c.
	ReplyComment = FromParts(1, 0x0002, Unique, Everybody, true)

	// BlogPost tags a long-form post in the reference microblog app.
	// Wire value 0x0000_0001_0003_001c.
	BlogPost = FromParts(1, 0x0003, Unique, Everybody, true)

	// ChatMessage tags a direct message in the reference microblog app.
	// Wire value 0x0000_0001_0004_001c.
	ChatMessage = FromParts(1, 0x0004, Unique, Everybody, true)
)
