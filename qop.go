package httpdigest

import "fmt"

// Qop identifies the quality of protection negotiated for a Digest
// exchange. An empty Qop on a Credential means the legacy RFC 2069 mode,
// where the response covers only the nonce and A2.
type Qop string

const (
	// QopAuth protects the request line only.
	QopAuth Qop = "auth"

	// QopAuthInt additionally protects the entity body.
	QopAuthInt Qop = "auth-int"
)

// ParseQop parses a qop parameter value.
func ParseQop(s string) (Qop, error) {
	switch q := Qop(s); q {
	case QopAuth, QopAuthInt:
		return q, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQop, s)
	}
}

// String returns the wire token for the qop value.
func (q Qop) String() string {
	return string(q)
}
