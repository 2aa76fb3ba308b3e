package httpdigest

import (
	"fmt"
	"strings"
)

// Scheme is the authentication scheme name used in Authorization and
// WWW-Authenticate header values.
const Scheme = "Digest"

// Charset identifies the character set announced by the charset parameter.
// UTF-8 is the only registered value.
type Charset string

// CharsetUTF8 is the UTF-8 charset token.
const CharsetUTF8 Charset = "UTF-8"

// Credential is a parsed Digest Authorization header value. It is an
// immutable value: derive variations by copying and never mutate a shared
// instance.
type Credential struct {
	// Username is the username or, when Userhash is set, the userhash.
	Username Username

	// Realm is the protection realm.
	Realm string

	// Nonce is the server nonce.
	Nonce string

	// NonceCount is the request counter for the nonce, decoded from the
	// eight hex digit nc parameter. Nil in legacy RFC 2069 mode.
	NonceCount *uint32

	// Response is the keyed digest, lowercase hexadecimal.
	Response string

	// URI is the request URI from the uri parameter.
	URI string

	// Algorithm is the hash algorithm. Parse defaults it to MD5.
	Algorithm HashAlgorithm

	// Qop is the quality of protection. Empty in legacy RFC 2069 mode.
	Qop Qop

	// ClientNonce is the cnonce parameter. Empty when absent.
	ClientNonce string

	// Opaque is the opaque parameter echoed back from the challenge.
	Opaque string

	// Charset is the charset parameter. Empty when absent; CharsetUTF8 is
	// the only valid value.
	Charset Charset

	// Userhash reports whether Username carries a userhash per RFC 7616
	// Section 3.4.4.
	Userhash bool
}

// String serializes the credential to its canonical wire form: the
// comma-separated parameter list without the scheme prefix. Parameters are
// emitted in a fixed order so output is deterministic.
func (c Credential) String() string {
	var b strings.Builder

	if ev, ok := c.Username.Extended(); ok {
		appendParam(&b, "username*", ev.String(), false)
	} else {
		appendParam(&b, "username", c.Username.String(), true)
	}

	appendParam(&b, "realm", c.Realm, true)
	appendParam(&b, "nonce", c.Nonce, true)

	if c.NonceCount != nil {
		appendParam(&b, "nc", fmt.Sprintf("%08x", *c.NonceCount), false)
	}

	appendParam(&b, "response", c.Response, true)
	appendParam(&b, "uri", c.URI, true)
	appendParam(&b, "algorithm", c.Algorithm.String(), false)

	if c.Qop != "" {
		appendParam(&b, "qop", c.Qop.String(), false)
	}

	if c.ClientNonce != "" {
		appendParam(&b, "cnonce", c.ClientNonce, true)
	}

	if c.Opaque != "" {
		appendParam(&b, "opaque", c.Opaque, true)
	}

	if c.Charset != "" {
		appendParam(&b, "charset", string(c.Charset), false)
	}

	if c.Userhash {
		appendParam(&b, "userhash", "true", false)
	}

	return b.String()
}

// appendParam writes one key=value pair to b, comma-separated from any
// previous pair. Quoted values get backslash escaping for quote and
// backslash characters.
func appendParam(b *strings.Builder, key, value string, quoted bool) {
	if b.Len() > 0 {
		b.WriteString(", ")
	}

	b.WriteString(key)
	b.WriteByte('=')

	if !quoted {
		b.WriteString(value)
		return
	}

	b.WriteByte('"')

	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch == '\\' || ch == '"' {
			b.WriteByte('\\')
		}

		b.WriteByte(ch)
	}

	b.WriteByte('"')
}
