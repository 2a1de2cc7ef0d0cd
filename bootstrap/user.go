package bootstrap

import (
	"strings"

	"github.com/mosaic-proto/mosaic-core/errs"
	"github.com/mosaic-proto/mosaic-core/keys"
)

// UserSalt is the DHT mutable-item salt a UserBootstrap is stored under.
const UserSalt = "mub25"

// ServerUsage is a bitset of the roles a UserBootstrap entry's server
// plays for the user: which of outbox relaying, inbox relaying, and
// encryption-key storage it provides.
type ServerUsage uint8

const (
	UsageOutbox     ServerUsage = 1 << 0
	UsageInbox      ServerUsage = 1 << 1
	UsageEncryption ServerUsage = 1 << 2
)

// printableByte renders u as the single ASCII digit the wire grammar
// uses: the low 3 bits OR'd with '0'.
func (u ServerUsage) printableByte() byte {
	return byte(u&0x07) | '0'
}

func usageFromPrintableByte(b byte) (ServerUsage, error) {
	if b < '0' || b > '7' {
		return 0, errs.At(errs.ErrInvalidUserBootstrapString)
	}

	return ServerUsage(b - '0'), nil
}

// UserBootstrapEntry names one server a user's client should use, and
// the roles (ServerUsage) it plays for that user.
type UserBootstrapEntry struct {
	Usage  ServerUsage
	Server keys.PublicKey
}

// UserBootstrap lists the servers a user publishes, alongside the DHT
// write sequence number.
type UserBootstrap struct {
	Entries []UserBootstrapEntry
	Seq     int64
}

// Encode renders the "U\n<u> <mopub0...>\n..." DHT value string.
func (u UserBootstrap) Encode() string {
	var b strings.Builder

	b.WriteString("U")
	for _, e := range u.Entries {
		b.WriteString("\n")
		b.WriteByte(e.Usage.printableByte())
		b.WriteString(" ")
		b.WriteString(e.Server.String())
	}

	return b.String()
}

// ParseUserBootstrap decodes a DHT value string into a UserBootstrap
// carrying seq (the sequence number the DHT item was read at).
func ParseUserBootstrap(s string, seq int64) (UserBootstrap, error) {
	if !strings.HasPrefix(s, "U\n") || len(s) < 4 {
		return UserBootstrap{}, errs.At(errs.ErrInvalidUserBootstrapString)
	}

	parts := strings.Split(s[2:], "\n")
	entries := make([]UserBootstrapEntry, len(parts))
	for i, p := range parts {
		if len(p) < 3 || p[1] != ' ' {
			return UserBootstrap{}, errs.At(errs.ErrInvalidUserBootstrapString)
		}

		usage, err := usageFromPrintableByte(p[0])
		if err != nil {
			return UserBootstrap{}, err
		}

		pk, err := keys.ParsePublicKey(p[2:])
		if err != nil {
			return UserBootstrap{}, err
		}

		entries[i] = UserBootstrapEntry{Usage: usage, Server: pk}
	}

	return UserBootstrap{Entries: entries, Seq: seq}, nil
}
