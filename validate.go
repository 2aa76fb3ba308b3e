package httpdigest

import (
	"crypto/sha256"
	"crypto/subtle"
)

// ValidateUserhash checks the credential's username against the userhash
// of the supplied username per RFC 7616 Section 3.4.4. It returns false
// when the credential does not declare userhash=true.
func ValidateUserhash(c Credential, username Username) bool {
	if !c.Userhash {
		return false
	}

	stored, ok := c.Username.Plain()
	if !ok {
		// Parse rejects username* with userhash=true, but a caller can
		// construct such a credential directly.
		return false
	}

	expected := GenerateUserhash(c.Algorithm, username.Bytes(), c.Realm)

	return constantTimeEqual(stored, expected)
}

// ValidateDigestUsingPassword recomputes the expected response from a
// plaintext password and compares it to the credential's response. A
// credential too incomplete to generate a response never validates.
func ValidateDigestUsingPassword(c Credential, method string, entityBody []byte, password string) bool {
	expected, err := GenerateDigestUsingPassword(c, method, entityBody, password)
	if err != nil {
		return false
	}

	return constantTimeEqual(expected, c.Response)
}

// ValidateDigestUsingHashedA1 recomputes the expected response from a
// precomputed hashed A1 and compares it to the credential's response.
func ValidateDigestUsingHashedA1(c Credential, method string, entityBody []byte, hashedA1 string) bool {
	expected, err := GenerateDigestUsingHashedA1(c, method, entityBody, hashedA1)
	if err != nil {
		return false
	}

	return constantTimeEqual(expected, c.Response)
}

// ValidateDigestUsingUserhashAndPassword first validates the credential's
// userhash against the supplied username, then validates the response with
// A1 computed from that username. A userhash mismatch short-circuits to
// false without attempting the response comparison.
func ValidateDigestUsingUserhashAndPassword(c Credential, method string, entityBody []byte, username Username, password string) bool {
	if !ValidateUserhash(c, username) {
		return false
	}

	expected, err := generateDigest(c, method, entityBody, username, password)
	if err != nil {
		return false
	}

	return constantTimeEqual(expected, c.Response)
}

// constantTimeEqual compares two strings in constant time by first hashing
// them with SHA-256. This prevents both value leaks and length-based timing
// leaks that raw ConstantTimeCompare would allow on different-length inputs.
func constantTimeEqual(a, b string) bool {
	aHash := sha256.Sum256([]byte(a))
	bHash := sha256.Sum256([]byte(b))

	return subtle.ConstantTimeCompare(aHash[:], bHash[:]) == 1
}
