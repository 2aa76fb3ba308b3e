package httpdigest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Parse parses a Digest Authorization header value (the parameter list
// after the scheme token) into a Credential.
//
// The qop/cnonce cross-field requirement is deliberately not checked here:
// legacy RFC 2069 senders omit both, and the stricter rule only applies
// when a response is generated.
func Parse(value string) (Credential, error) {
	var c Credential

	params, err := parseParams(value)
	if err != nil {
		return c, err
	}

	username, err := parseUsername(params)
	if err != nil {
		return c, err
	}
	c.Username = username

	for _, field := range []struct {
		key string
		dst *string
	}{
		{"realm", &c.Realm},
		{"nonce", &c.Nonce},
		{"response", &c.Response},
		{"uri", &c.URI},
	} {
		v, ok := params[field.key]
		if !ok {
			return Credential{}, fmt.Errorf("%w: %s", ErrMissingField, field.key)
		}

		*field.dst = v
	}

	if v, ok := params["nc"]; ok {
		count, err := parseNonceCount(v)
		if err != nil {
			return Credential{}, err
		}

		c.NonceCount = &count
	}

	c.Algorithm = AlgorithmMD5
	if v, ok := params["algorithm"]; ok {
		alg, err := ParseHashAlgorithm(v)
		if err != nil {
			return Credential{}, err
		}

		c.Algorithm = alg
	}

	if v, ok := params["qop"]; ok {
		qop, err := ParseQop(v)
		if err != nil {
			return Credential{}, err
		}

		c.Qop = qop
	}

	if v, ok := params["charset"]; ok {
		if !strings.EqualFold(v, string(CharsetUTF8)) {
			return Credential{}, fmt.Errorf("%w: %q", ErrInvalidCharset, v)
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
			return Credential{}, fmt.Errorf("%w: %q", ErrInvalidUserhashFlag, v)
		}
	}

	c.ClientNonce = params["cnonce"]
	c.Opaque = params["opaque"]

	return c, nil
}

// parseUsername resolves the username vs username* parameters. Both forms
// present is a conflict, as is an extended username on a userhash
// credential (a userhash is always a plain hex value).
func parseUsername(params map[string]string) (Username, error) {
	plain, hasPlain := params["username"]
	extended, hasExtended := params["username*"]

	switch {
	case hasPlain && hasExtended:
		return Username{}, fmt.Errorf("%w: username and username*", ErrUsernameConflict)

	case hasPlain:
		return PlainUsername(plain), nil

	case hasExtended:
		if params["userhash"] == "true" {
			return Username{}, fmt.Errorf("%w: username* with userhash", ErrUsernameConflict)
		}

		ev, err := ParseExtendedValue(extended)
		if err != nil {
			return Username{}, err
		}

		return ExtendedUsername(ev), nil

	default:
		return Username{}, fmt.Errorf("%w: username", ErrMissingField)
	}
}

// parseNonceCount decodes an nc parameter: exactly four bytes of hex,
// big-endian.
func parseNonceCount(s string) (uint32, error) {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNonceCount, s)
	}

	return binary.BigEndian.Uint32(raw), nil
}
