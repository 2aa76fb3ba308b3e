package httpdigest

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
)

// DigestAuthConfig configures the Digest authentication middleware.
type DigestAuthConfig struct {
	// Realm is the protection realm sent in challenges and required in
	// credentials. Defaults to "Restricted" when empty.
	Realm string

	// Algorithm is the algorithm advertised in challenges. Defaults to
	// MD5. Credentials using other algorithms are still validated.
	Algorithm HashAlgorithm

	// Qop is the quality of protection advertised in challenges.
	// Defaults to auth.
	Qop Qop

	// PasswordFunc resolves the plaintext password for a username within
	// the realm. Takes priority over HashedA1Func when both are set. The
	// username is passed as it appears on the wire; when the client sent
	// a userhash, the callback receives the userhash.
	PasswordFunc func(username, realm string) (password string, ok bool)

	// HashedA1Func resolves an htdigest-style precomputed
	// hash(username:realm:password) secret.
	HashedA1Func func(username, realm string) (hashedA1 string, ok bool)

	// NonceFunc overrides the challenge nonce source. When nil, a random
	// 16-byte hex value is used. Nonce freshness and replay tracking are
	// the caller's responsibility, via NonceValidFunc.
	NonceFunc func() string

	// NonceValidFunc, when set, is consulted with the credential's nonce
	// before validation. Returning false rejects the request with a
	// stale=true challenge.
	NonceValidFunc func(nonce string) bool

	// LogFunc is an optional callback invoked with the request and the
	// error when a credential fails to parse. When nil, no logging is
	// performed.
	LogFunc func(r *http.Request, err error)
}

// DigestAuthMiddleware returns a middleware that implements HTTP Digest
// Authentication per RFC 7616. It validates the Authorization header and
// responds with 401 Unauthorized plus a fresh challenge when credentials
// are missing or invalid.
//
// It returns ErrNoAuthSource if both PasswordFunc and HashedA1Func are nil.
func DigestAuthMiddleware(cfg DigestAuthConfig) (func(http.Handler) http.Handler, error) {
	if cfg.PasswordFunc == nil && cfg.HashedA1Func == nil {
		return nil, ErrNoAuthSource
	}

	realm := cfg.Realm
	if realm == "" {
		realm = "Restricted"
	}

	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmMD5
	}

	qop := cfg.Qop
	if qop == "" {
		qop = QopAuth
	}

	nonceFunc := cfg.NonceFunc
	if nonceFunc == nil {
		nonceFunc = randomNonce
	}

	challenge := func(stale bool) string {
		return Scheme + " " + Challenge{
			Realm:     realm,
			Nonce:     nonceFunc(),
			Stale:     stale,
			Algorithm: algorithm,
			Qop:       []Qop{qop},
		}.String()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cred, ok := digestCredential(r, cfg.LogFunc)
			if !ok {
				unauthorized(w, challenge(false))
				return
			}

			if cred.Realm != realm {
				unauthorized(w, challenge(false))
				return
			}

			if cfg.NonceValidFunc != nil && !cfg.NonceValidFunc(cred.Nonce) {
				unauthorized(w, challenge(true))
				return
			}

			var entityBody []byte
			if cred.Qop == QopAuthInt {
				body, err := readAndRestoreBody(r)
				if err != nil {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				entityBody = body
			}

			username := cred.Username.String()

			var valid bool
			if cfg.PasswordFunc != nil {
				// Always perform the validation to prevent timing leaks
				// that reveal whether a username exists.
				password, exists := cfg.PasswordFunc(username, realm)
				valid = ValidateDigestUsingPassword(cred, r.Method, entityBody, password) && exists
			} else {
				hashedA1, exists := cfg.HashedA1Func(username, realm)
				valid = ValidateDigestUsingHashedA1(cred, r.Method, entityBody, hashedA1) && exists
			}

			if !valid {
				unauthorized(w, challenge(false))
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// digestCredential extracts and parses the Digest credential from the
// request's Authorization header.
func digestCredential(r *http.Request, logFunc func(*http.Request, error)) (Credential, bool) {
	value := r.Header.Get("Authorization")
	if value == "" {
		return Credential{}, false
	}

	scheme, rest, ok := strings.Cut(strings.TrimSpace(value), " ")
	if !ok || !strings.EqualFold(scheme, Scheme) {
		return Credential{}, false
	}

	cred, err := Parse(rest)
	if err != nil {
		if logFunc != nil {
			logFunc(r, err)
		}

		return Credential{}, false
	}

	return cred, true
}

// unauthorized writes a 401 response with the WWW-Authenticate header and
// an empty body.
func unauthorized(w http.ResponseWriter, wwwAuthenticate string) {
	w.Header().Set("WWW-Authenticate", wwwAuthenticate)
	w.WriteHeader(http.StatusUnauthorized)
}

// randomNonce returns 16 random bytes as lowercase hex.
func randomNonce() string {
	buf := make([]byte, 16)
	rand.Read(buf)

	return hex.EncodeToString(buf)
}

// readAndRestoreBody reads the entire request body and replaces it with a
// new reader so the body can be consumed again by downstream handlers.
func readAndRestoreBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
