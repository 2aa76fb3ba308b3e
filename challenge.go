package httpdigest

import (
	"fmt"
	"strings"
)

// Challenge is a parsed Digest WWW-Authenticate header value, as sent by a
// server to solicit credentials. The package parses and serializes
// challenges; minting nonces and tracking their freshness is the embedding
// server's concern.
type Challenge struct {
	// Realm is the protection realm. Required.
	Realm string

	// Domain lists the protection space URIs. Optional.
	Domain []string

	// Nonce is the server nonce. Required.
	Nonce string

	// Opaque is a server-chosen value the client must echo back.
	Opaque string

	// Stale indicates the previous credential used an expired nonce and
	// the client may retry without re-prompting for a password.
	Stale bool

	// Algorithm is the hash algorithm. Empty means unspecified, which
	// clients treat as MD5.
	Algorithm HashAlgorithm

	// Qop lists the quality of protection values the server accepts.
	Qop []Qop

	// Charset is the charset parameter. CharsetUTF8 is the only valid
	// value.
	Charset Charset

	// Userhash advertises that the server accepts a userhash in place of
	// the username.
	Userhash bool
}

// ParseChallenge parses a Digest WWW-Authenticate header value (the
// parameter list after the scheme token).
func ParseChallenge(value string) (Challenge, error) {
	var c Challenge

	params, err := parseParams(value)
	if err != nil {
		return c, err
	}

	realm, ok := params["realm"]
	if !ok {
		return c, fmt.Errorf("%w: realm", ErrMissingField)
	}
	c.Realm = realm

	nonce, ok := params["nonce"]
	if !ok {
		return c, fmt.Errorf("%w: nonce", ErrMissingField)
	}
	c.Nonce = nonce

	if v, ok := params["domain"]; ok {
		c.Domain = strings.Fields(v)
	}

	c.Opaque = params["opaque"]

	if v, ok := params["stale"]; ok {
		c.Stale = strings.EqualFold(v, "true")
	}

	if v, ok := params["algorithm"]; ok {
		alg, err := ParseHashAlgorithm(v)
		if err != nil {
			return Challenge{}, err
		}

		c.Algorithm = alg
	}

	if v, ok := params["qop"]; ok {
		for _, item := range strings.Split(v, ",") {
			qop, err := ParseQop(strings.TrimSpace(item))
			if err != nil {
				return Challenge{}, err
			}

			c.Qop = append(c.Qop, qop)
		}
	}

	if v, ok := params["charset"]; ok {
		if !strings.EqualFold(v, string(CharsetUTF8)) {
			return Challenge{}, fmt.Errorf("%w: %q", ErrInvalidCharset, v)
		}

		c.Charset = CharsetUTF8
	}

	if v, ok := params["userhash"]; ok {
		switch v {
		case "true":
			c.Userhash = true
		case "false":
			c.Userhash = false
		default:
			return Challenge{}, fmt.Errorf("%w: %q", ErrInvalidUserhashFlag, v)
		}
	}

	return c, nil
}

// String serializes the challenge to its wire form: the comma-separated
// parameter list without the scheme prefix.
func (c Challenge) String() string {
	var b strings.Builder

	appendParam(&b, "realm", c.Realm, true)

	if len(c.Domain) > 0 {
		appendParam(&b, "domain", strings.Join(c.Domain, " "), true)
	}

	appendParam(&b, "nonce", c.Nonce, true)

	if c.Opaque != "" {
		appendParam(&b, "opaque", c.Opaque, true)
	}

	if c.Stale {
		appendParam(&b, "stale", "true", false)
	}

	if c.Algorithm != "" {
		appendParam(&b, "algorithm", c.Algorithm.String(), false)
	}

	if len(c.Qop) > 0 {
		tokens := make([]string, len(c.Qop))
		for i, qop := range c.Qop {
			tokens[i] = qop.String()
		}

		appendParam(&b, "qop", strings.Join(tokens, ","), true)
	}

	if c.Charset != "" {
		appendParam(&b, "charset", string(c.Charset), false)
	}

	if c.Userhash {
		appendParam(&b, "userhash", "true", false)
	}

	return b.String()
}

// SupportsQop reports whether the challenge advertises the given qop.
func (c Challenge) SupportsQop(qop Qop) bool {
	for _, q := range c.Qop {
		if q == qop {
			return true
		}
	}

	return false
}
