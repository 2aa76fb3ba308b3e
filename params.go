package httpdigest

import (
	"fmt"
	"net/url"
	"strings"
)

// splitParams splits a Digest parameter list on commas while respecting
// "..." quoted regions. Backslash-escaped quotes (\") inside quoted strings
// are handled. Each resulting token is trimmed of whitespace and empty
// tokens are skipped.
func splitParams(s string) []string {
	var result []string
	var part strings.Builder
	inQuote := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inQuote {
			if ch == '\\' && i+1 < len(s) {
				part.WriteByte(ch)
				i++
				part.WriteByte(s[i])
				continue
			}

			if ch == '"' {
				inQuote = false
			}

			part.WriteByte(ch)
			continue
		}

		if ch == '"' {
			inQuote = true
			part.WriteByte(ch)
			continue
		}

		if ch == ',' {
			p := strings.TrimSpace(part.String())
			if p != "" {
				result = append(result, p)
			}

			part.Reset()
			continue
		}

		part.WriteByte(ch)
	}

	if p := strings.TrimSpace(part.String()); p != "" {
		result = append(result, p)
	}

	return result
}

// unquote removes a single pair of surrounding double quotes and unescapes
// backslash escape sequences (\\ → \ and \" → ").
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			b.WriteByte(s[i])

			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

// parseParams turns a Digest parameter list into a case-insensitive map of
// parameter name to decoded value. Values are unquoted and percent-decoded;
// a value with malformed percent escapes is kept verbatim. The last
// occurrence of a duplicate key wins.
func parseParams(s string) (map[string]string, error) {
	tokens := splitParams(s)
	params := make(map[string]string, len(tokens))

	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedParameter, token)
		}

		value = unquote(strings.TrimSpace(value))

		decoded, err := url.PathUnescape(value)
		if err != nil {
			decoded = value
		}

		params[strings.ToLower(strings.TrimSpace(key))] = decoded
	}

	return params, nil
}
