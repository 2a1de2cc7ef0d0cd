// Package bootstrap implements the textual encoding of the two DHT
// bootstrap record kinds this core defines but does not transport:
// ServerBootstrap and UserBootstrap. The core only produces/consumes
// these strings; storing and retrieving them via a Mainline-DHT-like
// mutable-item service is an external collaborator's job.
package bootstrap

import (
	"net/url"
	"strings"

	"github.com/mosaic-proto/mosaic-core/errs"
)

// ServerSalt is the DHT mutable-item salt a ServerBootstrap is stored
// under.
const ServerSalt = "msb24"

// ServerBootstrap lists the URIs a server advertises for client
// connections, alongside the DHT write sequence number.
type ServerBootstrap struct {
	URIs []string
	Seq  int64
}

// NewServerBootstrap validates and normalizes uris (scheme wss or https,
// no trailing slash) into a ServerBootstrap.
func NewServerBootstrap(uris []string, seq int64) (ServerBootstrap, error) {
	cleaned := make([]string, len(uris))
	for i, u := range uris {
		c, err := cleanServerURI(u)
		if err != nil {
			return ServerBootstrap{}, err
		}

		cleaned[i] = c
	}

	return ServerBootstrap{URIs: cleaned, Seq: seq}, nil
}

func cleanServerURI(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errs.At(errs.ErrInvalidServerBootstrapString)
	}
	if u.Scheme == "" {
		return "", errs.At(errs.ErrMissingScheme)
	}
	if u.Scheme != "wss" && u.Scheme != "https" {
		return "", errs.At(errs.ErrBadScheme)
	}
	if u.Host == "" {
		return "", errs.At(errs.ErrInvalidServerBootstrapString)
	}

	return u.Scheme + "://" + u.Host, nil
}

// Encode renders the "S\n<uri>\n<uri>..." DHT value string.
func (s ServerBootstrap) Encode() string {
	var b strings.Builder

	b.WriteString("S")
	for _, u := range s.URIs {
		b.WriteString("\n")
		b.WriteString(u)
	}

	return b.String()
}

// ParseServerBootstrap decodes a DHT value string into a ServerBootstrap
// carrying seq (the sequence number the DHT item was read at).
func ParseServerBootstrap(s string, seq int64) (ServerBootstrap, error) {
	if !strings.HasPrefix(s, "S\n") || len(s) < 4 {
		return ServerBootstrap{}, errs.At(errs.ErrInvalidServerBootstrapString)
	}

	parts := strings.Split(s[2:], "\n")
	uris := make([]string, len(parts))
	for i, p := range parts {
		c, err := cleanServerURI(p)
		if err != nil {
			return ServerBootstrap{}, err
		}

		uris[i] = c
	}

	return ServerBootstrap{URIs: uris, Seq: seq}, nil
}
