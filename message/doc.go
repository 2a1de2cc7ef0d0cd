// Package message implements the Mosaic core's protocol framing layer.
//
// Every frame begins with the same 8 bytes — `type:u8 ++ code:u8 ++
// sub2:[2]u8 ++ length:u32 LE` — where length counts the whole frame,
// header included. The code byte carries a ResultCode on server response
// types and the sub2 bytes carry the query id on client/server exchange
// types (the protocol version on Hello/HelloAck).
//
// # Frame Types
//
// Client-to-server: Hello, Get, Query, Subscribe, Unsubscribe, Submission,
// BlobGet, BlobSubmission, DhtLookup. Server-to-client: HelloAck, Record,
// LocallyComplete, QueryClosed, SubmissionResult, BlobResult,
// BlobSubmissionResult, DhtResponse, Closing.
//
// # Validation
//
// Parse recomputes the expected body shape for the declared type — fixed
// size, a run of fixed-size chunks, or a minimum plus an embedded
// Record/Filter that is handed to its own parser. Blob-carrying frames
// additionally verify the leading 32-byte BLAKE3 hash against the blob
// bytes, and SubmissionResult rejects an id prefix whose high bit is set
// (that would be an Address, not an Id).
//
// The New* constructors are the senders' side of the same schemas; a
// frame built here always round-trips through Parse.
package message
