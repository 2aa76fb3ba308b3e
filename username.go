package httpdigest

// Username is the username carried by a Digest credential. It is either a
// plain value (an ASCII or percent-decoded name, or a precomputed userhash
// when the credential's userhash flag is set) or an RFC 5987 extended value
// from the username* parameter. Exactly one form is populated.
type Username struct {
	plain    string
	extended *ExtendedValue
}

// PlainUsername returns a Username holding a plain value.
func PlainUsername(name string) Username {
	return Username{plain: name}
}

// ExtendedUsername returns a Username holding an RFC 5987 extended value.
func ExtendedUsername(ev ExtendedValue) Username {
	return Username{extended: &ev}
}

// Plain returns the plain value and true when the username is the plain
// form.
func (u Username) Plain() (string, bool) {
	if u.extended != nil {
		return "", false
	}

	return u.plain, true
}

// Extended returns the extended value and true when the username came from
// a username* parameter.
func (u Username) Extended() (ExtendedValue, bool) {
	if u.extended == nil {
		return ExtendedValue{}, false
	}

	return *u.extended, true
}

// Bytes returns the raw octets of the username as used in A1 and userhash
// computation.
func (u Username) Bytes() []byte {
	if u.extended != nil {
		return u.extended.Value
	}

	return []byte(u.plain)
}

// String returns the plain value, or the serialized extended value.
func (u Username) String() string {
	if u.extended != nil {
		return u.extended.String()
	}

	return u.plain
}
