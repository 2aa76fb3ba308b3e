package httpdigest

import (
	"fmt"
	"strings"
)

// ExtendedValue is an RFC 5987 extended parameter value, as carried by the
// username* parameter: a charset, an optional language tag, and the raw
// decoded octets.
type ExtendedValue struct {
	// Charset is the character set token, normally "UTF-8".
	Charset string

	// Language is the optional BCP 47 language tag.
	Language string

	// Value holds the percent-decoded octets.
	Value []byte
}

// ParseExtendedValue parses an RFC 5987 extended value of the form
// charset'language'percent-encoded-octets.
func ParseExtendedValue(s string) (ExtendedValue, error) {
	var ev ExtendedValue

	first := strings.IndexByte(s, '\'')
	if first < 0 {
		return ev, fmt.Errorf("%w: missing charset delimiter", ErrInvalidExtendedValue)
	}

	second := strings.IndexByte(s[first+1:], '\'')
	if second < 0 {
		return ev, fmt.Errorf("%w: missing language delimiter", ErrInvalidExtendedValue)
	}
	second += first + 1

	charset := s[:first]
	if charset == "" {
		return ev, fmt.Errorf("%w: empty charset", ErrInvalidExtendedValue)
	}

	value, err := percentDecodeBytes(s[second+1:])
	if err != nil {
		return ev, err
	}

	ev.Charset = charset
	ev.Language = s[first+1 : second]
	ev.Value = value

	return ev, nil
}

// String renders the extended value back to charset'language'encoded form,
// percent-encoding every octet outside the RFC 5987 attr-char set.
func (ev ExtendedValue) String() string {
	var b strings.Builder
	b.WriteString(ev.Charset)
	b.WriteByte('\'')
	b.WriteString(ev.Language)
	b.WriteByte('\'')

	for _, ch := range ev.Value {
		if isAttrChar(ch) {
			b.WriteByte(ch)
		} else {
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}

	return b.String()
}

// isAttrChar reports whether ch is in the attr-char set of RFC 5987
// Section 3.2.1: ALPHA / DIGIT / "!" / "#" / "$" / "&" / "+" / "-" / "." /
// "^" / "_" / "`" / "|" / "~".
func isAttrChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}

	switch ch {
	case '!', '#', '$', '&', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}

	return false
}

// percentDecodeBytes decodes %XX escapes into raw octets without any
// character set validation.
func percentDecodeBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			out = append(out, s[i])
			continue
		}

		if i+2 >= len(s) {
			return nil, fmt.Errorf("%w: truncated percent escape", ErrInvalidExtendedValue)
		}

		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: invalid percent escape", ErrInvalidExtendedValue)
		}

		out = append(out, hi<<4|lo)
		i += 2
	}

	return out, nil
}

func unhex(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}

	return 0, false
}
