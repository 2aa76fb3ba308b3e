package httpdigest

import "fmt"

// GenerateUserhash computes hash(username:realm) per RFC 7616
// Section 3.4.4. The username is taken as raw octets so that non-ASCII
// names hash the same bytes the client hashed.
func GenerateUserhash(algorithm HashAlgorithm, username []byte, realm string) string {
	data := make([]byte, 0, len(username)+1+len(realm))
	data = append(data, username...)
	data = append(data, ':')
	data = append(data, realm...)

	return algorithm.hash(data)
}

// GenerateSimpleHashedA1 computes hash(username:realm:password), the
// non-session A1 of RFC 2617 Section 3.2.2.2. It is exposed for callers
// that keep htdigest-style precomputed secrets instead of plaintext
// passwords.
func GenerateSimpleHashedA1(algorithm HashAlgorithm, username Username, realm, password string) string {
	return algorithm.hash(simpleA1(username, realm, password))
}

// GenerateDigestUsingPassword computes the credential's expected response
// from a plaintext password, the request method, and the entity body. The
// entity body only participates when qop is auth-int.
func GenerateDigestUsingPassword(c Credential, method string, entityBody []byte, password string) (string, error) {
	return generateDigest(c, method, entityBody, c.Username, password)
}

// GenerateDigestUsingHashedA1 computes the expected response from a
// precomputed hashed A1, for systems that store only the hashed secret.
func GenerateDigestUsingHashedA1(c Credential, method string, entityBody []byte, hashedA1 string) (string, error) {
	ha2 := c.Algorithm.hash([]byte(a2(c, method, entityBody)))

	data, err := responseData(c, ha2)
	if err != nil {
		return "", err
	}

	return kd(c.Algorithm, hashedA1, data), nil
}

// generateDigest computes the response using an explicit username for A1,
// which may differ from c.Username when the credential carries a userhash.
func generateDigest(c Credential, method string, entityBody []byte, username Username, password string) (string, error) {
	ha1, err := hashedA1(c, username, password)
	if err != nil {
		return "", err
	}

	return GenerateDigestUsingHashedA1(c, method, entityBody, ha1)
}

// simpleA1 builds username:realm:password as raw octets.
func simpleA1(username Username, realm, password string) []byte {
	name := username.Bytes()

	a1 := make([]byte, 0, len(name)+len(realm)+len(password)+2)
	a1 = append(a1, name...)
	a1 = append(a1, ':')
	a1 = append(a1, realm...)
	a1 = append(a1, ':')
	a1 = append(a1, password...)

	return a1
}

// a1 builds the A1 value per RFC 2617 Section 3.2.2.2. Session algorithms
// fold the nonce and client nonce into A1 and therefore require a client
// nonce.
func a1(c Credential, username Username, password string) ([]byte, error) {
	simple := simpleA1(username, c.Realm, password)

	if !c.Algorithm.Session() {
		return simple, nil
	}

	if c.ClientNonce == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingClientNonce, c.Algorithm)
	}

	inner := c.Algorithm.hash(simple)

	out := make([]byte, 0, len(inner)+len(c.Nonce)+len(c.ClientNonce)+2)
	out = append(out, inner...)
	out = append(out, ':')
	out = append(out, c.Nonce...)
	out = append(out, ':')
	out = append(out, c.ClientNonce...)

	return out, nil
}

func hashedA1(c Credential, username Username, password string) (string, error) {
	value, err := a1(c, username, password)
	if err != nil {
		return "", err
	}

	return c.Algorithm.hash(value), nil
}

// a2 builds the A2 value per RFC 2617 Section 3.2.2.3. With auth-int the
// entity body digest is appended.
func a2(c Credential, method string, entityBody []byte) string {
	if c.Qop == QopAuthInt {
		return method + ":" + c.URI + ":" + c.Algorithm.hash(entityBody)
	}

	return method + ":" + c.URI
}

// responseData builds the data half of KD. With qop set, both the nonce
// count and client nonce are mandatory; without qop the legacy RFC 2069
// form applies.
func responseData(c Credential, hashedA2 string) (string, error) {
	if c.Qop == "" {
		return c.Nonce + ":" + hashedA2, nil
	}

	if c.NonceCount == nil || c.ClientNonce == "" {
		return "", fmt.Errorf("%w: qop=%s", ErrMissingQopFields, c.Qop)
	}

	return fmt.Sprintf("%s:%08x:%s:%s:%s",
		c.Nonce, *c.NonceCount, c.ClientNonce, c.Qop, hashedA2), nil
}

// kd computes KD(secret, data) = hash(secret:data).
func kd(algorithm HashAlgorithm, secret, data string) string {
	return algorithm.hash([]byte(secret + ":" + data))
}
