package httpdigest

import "errors"

// Parse errors.
var (
	// ErrMissingField is returned when a mandatory credential parameter
	// (username, realm, nonce, response, uri) is absent. The wrapped
	// message names the missing parameter.
	ErrMissingField = errors.New("httpdigest: missing required parameter")

	// ErrMalformedParameter is returned when a parameter token does not
	// contain a key=value separator.
	ErrMalformedParameter = errors.New("httpdigest: malformed parameter")

	// ErrUsernameConflict is returned when both username and username*
	// are present, or when username* is combined with userhash=true.
	ErrUsernameConflict = errors.New("httpdigest: conflicting username parameters")

	// ErrInvalidExtendedValue is returned when a username* value is not a
	// valid RFC 5987 extended value.
	ErrInvalidExtendedValue = errors.New("httpdigest: invalid extended value")

	// ErrInvalidNonceCount is returned when the nc parameter is not
	// exactly eight hexadecimal digits.
	ErrInvalidNonceCount = errors.New("httpdigest: invalid nonce count")

	// ErrUnknownAlgorithm is returned when the algorithm parameter is not
	// one of the six registered Digest algorithm tokens.
	ErrUnknownAlgorithm = errors.New("httpdigest: unknown algorithm")

	// ErrUnknownQop is returned when the qop parameter is neither auth
	// nor auth-int.
	ErrUnknownQop = errors.New("httpdigest: unknown qop value")

	// ErrInvalidCharset is returned when the charset parameter is present
	// but is not UTF-8.
	ErrInvalidCharset = errors.New("httpdigest: invalid charset")

	// ErrInvalidUserhashFlag is returned when the userhash parameter is
	// neither true nor false.
	ErrInvalidUserhashFlag = errors.New("httpdigest: invalid userhash flag")
)

// Generation errors.
var (
	// ErrMissingClientNonce is returned when a session algorithm requires
	// a client nonce that the credential does not carry.
	ErrMissingClientNonce = errors.New("httpdigest: client nonce required for session algorithm")

	// ErrMissingQopFields is returned when qop is set but the credential
	// lacks a nonce count or client nonce.
	ErrMissingQopFields = errors.New("httpdigest: nonce count and client nonce required with qop")
)

// Adapter errors.
var (
	// ErrNoAuthSource is returned when DigestAuthConfig has neither
	// PasswordFunc nor HashedA1Func configured.
	ErrNoAuthSource = errors.New("httpdigest: at least one of PasswordFunc or HashedA1Func must be set")

	// ErrNoCredentials is returned when TransportConfig has no username
	// configured.
	ErrNoCredentials = errors.New("httpdigest: username must not be empty")

	// ErrInvalidHeaderValue is returned when a serialized credential
	// contains octets that are not valid in an HTTP header value.
	ErrInvalidHeaderValue = errors.New("httpdigest: credential not representable as a header value")
)
