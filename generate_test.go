package httpdigest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSimpleHashedA1(t *testing.T) {
	hashed := GenerateSimpleHashedA1(AlgorithmMD5,
		PlainUsername("Mufasa"), "testrealm@host.com", "Circle Of Life")

	assert.Equal(t, "939e7578ed9e3c518a452acee763bce9", hashed)
}

func TestGenerateDigestUsingPassword(t *testing.T) {
	t.Run("rfc 2617 md5 with qop auth", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5)

		response, err := GenerateDigestUsingPassword(cred, "GET", nil, "Circle Of Life")
		require.NoError(t, err)
		assert.Equal(t, "6629fae49393a05397450978507c4ef1", response)
	})

	t.Run("rfc 2069 legacy mode", func(t *testing.T) {
		cred := rfc2069Credential("testrealm@host.com")

		response, err := GenerateDigestUsingPassword(cred, "GET", nil, "CircleOfLife")
		require.NoError(t, err)
		assert.Equal(t, "1949323746fe6a43ef61f9606e7febea", response)
	})

	t.Run("legacy mode with head method", func(t *testing.T) {
		// Vector produced by passport-http.
		cred := Credential{
			Username:  PlainUsername("bob"),
			Realm:     "Users",
			Nonce:     "NOIEDJ3hJtqSKaty8KF8xlkaYbItAkiS",
			Response:  "22e3e0a9bbefeb9d229905230cb9ddc8",
			URI:       "/",
			Algorithm: AlgorithmMD5,
		}

		response, err := GenerateDigestUsingPassword(cred, "HEAD", nil, "secret")
		require.NoError(t, err)
		assert.Equal(t, cred.Response, response)
	})

	t.Run("rfc 7616 md5", func(t *testing.T) {
		cred := rfc7616Credential(AlgorithmMD5, "8ca523f5e9506fed4657c9700eebdbec")

		response, err := GenerateDigestUsingPassword(cred, "GET", nil, "Circle of Life")
		require.NoError(t, err)
		assert.Equal(t, cred.Response, response)
	})

	t.Run("rfc 7616 sha-256", func(t *testing.T) {
		cred := rfc7616Credential(AlgorithmSHA256,
			"753927fa0e85d155564e2e272a28d1802ca10daf4496794697cf8db5856cb6c1")

		response, err := GenerateDigestUsingPassword(cred, "GET", nil, "Circle of Life")
		require.NoError(t, err)
		assert.Equal(t, cred.Response, response)
	})

	t.Run("rfc 7616 sha-512-256", func(t *testing.T) {
		// Section 3.9.2: A1 uses the real username even though the wire
		// username is its userhash.
		cred := rfc7616UserhashCredential("Jäsøn Doe", false)

		response, err := GenerateDigestUsingPassword(cred, "GET", nil, "Secret, or not?")
		require.NoError(t, err)
		assert.Equal(t, cred.Response, response)
		assert.Len(t, response, 64)
	})

	t.Run("md5-sess folds nonce and cnonce into a1", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5Session)

		response, err := GenerateDigestUsingPassword(cred, "GET", nil, "Circle Of Life")
		require.NoError(t, err)
		assert.Equal(t, "8e3825c57e897f5a0dec6c2d4e5059d0", response)
	})

	t.Run("session algorithm without client nonce", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5Session)
		cred.ClientNonce = ""

		_, err := GenerateDigestUsingPassword(cred, "GET", nil, "Circle Of Life")
		assert.ErrorIs(t, err, ErrMissingClientNonce)
	})
}

func TestGenerateDigestUsingHashedA1(t *testing.T) {
	const hashedA1 = "939e7578ed9e3c518a452acee763bce9"

	t.Run("matches the password entry point", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5)

		response, err := GenerateDigestUsingHashedA1(cred, "GET", nil, hashedA1)
		require.NoError(t, err)
		assert.Equal(t, "6629fae49393a05397450978507c4ef1", response)
	})

	t.Run("auth-int covers the entity body", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5)
		cred.Qop = QopAuthInt

		response, err := GenerateDigestUsingHashedA1(cred, "GET", []byte("foo=bar"), hashedA1)
		require.NoError(t, err)
		assert.Equal(t, "7b9be1c2def9d4ad657b26ac8bc651a0", response)
	})

	t.Run("qop without nonce count", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5)
		cred.Qop = QopAuthInt
		cred.NonceCount = nil

		_, err := GenerateDigestUsingHashedA1(cred, "GET", []byte("foo=bar"), hashedA1)
		assert.ErrorIs(t, err, ErrMissingQopFields)
	})

	t.Run("qop without client nonce", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5)
		cred.Qop = QopAuthInt
		cred.ClientNonce = ""

		_, err := GenerateDigestUsingHashedA1(cred, "GET", []byte("foo=bar"), hashedA1)
		assert.ErrorIs(t, err, ErrMissingQopFields)
	})

	t.Run("legacy mode ignores qop fields", func(t *testing.T) {
		cred := rfc2617Credential(AlgorithmMD5)
		cred.Qop = ""

		response, err := GenerateDigestUsingHashedA1(cred, "GET", nil, hashedA1)
		require.NoError(t, err)
		assert.Equal(t, "670fd8c2df070c60b045671b8b24ff02", response)
	})
}

func TestGenerateUserhash(t *testing.T) {
	t.Run("rfc 7616 section 3.9.2", func(t *testing.T) {
		hash := GenerateUserhash(AlgorithmSHA512256, []byte("Jäsøn Doe"), "api@example.org")
		assert.Equal(t, rfc7616Userhash, hash)
	})

	t.Run("differs per realm", func(t *testing.T) {
		a := GenerateUserhash(AlgorithmSHA256, []byte("Mufasa"), "realm-a")
		b := GenerateUserhash(AlgorithmSHA256, []byte("Mufasa"), "realm-b")
		assert.NotEqual(t, a, b)
	})
}
