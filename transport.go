package httpdigest

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/http/httpguts"
)

// TransportConfig configures client-side Digest authentication.
type TransportConfig struct {
	// Username is the account name presented to the server. Required.
	Username string

	// Password is the account secret.
	Password string

	// CnonceFunc overrides the client nonce source. When nil, a random
	// UUID-derived value is used.
	CnonceFunc func() string
}

// Transport is an http.RoundTripper that answers Digest authentication
// challenges. Requests are sent unauthenticated first; when the server
// responds 401 with a Digest challenge, the request is retried once with a
// computed Authorization header.
//
// Use NewTransport to create a Transport with a configured *http.Transport
// for proxy, TLS, and timeout settings.
type Transport struct {
	base   http.RoundTripper
	config TransportConfig

	// nonceCounts tracks how many requests have been answered per server
	// nonce, so nc increments when the server reuses a nonce instead of
	// resending 00000001 and tripping replay detection.
	mu          sync.Mutex
	nonceCounts map[string]uint32
}

// NewTransport creates a Transport that delegates to base. When base is
// nil, a clone of http.DefaultTransport is used, giving an independent
// connection pool with default proxy, TLS, and timeout settings.
func NewTransport(base *http.Transport, cfg TransportConfig) (*Transport, error) {
	if cfg.Username == "" {
		return nil, ErrNoCredentials
	}

	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:        rt,
		config:      cfg,
		nonceCounts: make(map[string]uint32),
	}, nil
}

// RoundTrip sends the request and, on a 401 carrying a Digest challenge,
// retries once with computed credentials. The 401 response is returned
// unchanged when the challenge cannot be answered or the request body
// cannot be replayed (no GetBody).
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	challenge, ok := digestChallenge(resp.Header)
	if !ok {
		return resp, nil
	}

	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}

	authorization, err := t.answer(challenge, req)
	if err != nil {
		return resp, nil
	}

	// Drain the challenge response so the connection can be reused.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		clone.Body = body
	}

	clone.Header.Set("Authorization", authorization)

	return t.base.RoundTrip(clone)
}

// answer computes the Authorization header value for a challenge.
func (t *Transport) answer(challenge Challenge, req *http.Request) (string, error) {
	algorithm := challenge.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmMD5
	}

	var qop Qop
	switch {
	case challenge.SupportsQop(QopAuth):
		qop = QopAuth
	case challenge.SupportsQop(QopAuthInt):
		qop = QopAuthInt
	}

	cred := Credential{
		Realm:     challenge.Realm,
		Nonce:     challenge.Nonce,
		URI:       req.URL.RequestURI(),
		Algorithm: algorithm,
		Qop:       qop,
		Opaque:    challenge.Opaque,
		Charset:   challenge.Charset,
	}

	username := PlainUsername(t.config.Username)
	if challenge.Userhash {
		cred.Userhash = true
		cred.Username = PlainUsername(GenerateUserhash(algorithm, username.Bytes(), challenge.Realm))
	} else {
		cred.Username = username
	}

	if qop != "" || algorithm.Session() {
		cred.ClientNonce = t.cnonce()
	}

	if qop != "" {
		count := t.nextNonceCount(challenge.Nonce)
		cred.NonceCount = &count
	}

	var entityBody []byte
	if qop == QopAuthInt && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return "", err
		}

		entityBody, err = io.ReadAll(body)
		body.Close()
		if err != nil {
			return "", err
		}
	}

	// A1 is always computed from the real username, even when the wire
	// username is a userhash.
	response, err := generateDigest(cred, req.Method, entityBody, username, t.config.Password)
	if err != nil {
		return "", err
	}
	cred.Response = response

	value := Scheme + " " + cred.String()
	if !httpguts.ValidHeaderFieldValue(value) {
		return "", fmt.Errorf("%w: %s", ErrInvalidHeaderValue, "authorization")
	}

	return value, nil
}

// nextNonceCount returns the nc value for the next request under the given
// server nonce: 1 on first use, incrementing on every reuse.
func (t *Transport) nextNonceCount(nonce string) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nonceCounts[nonce]++

	return t.nonceCounts[nonce]
}

func (t *Transport) cnonce() string {
	if t.config.CnonceFunc != nil {
		return t.config.CnonceFunc()
	}

	id := uuid.New()

	return hex.EncodeToString(id[:])
}

// digestChallenge finds the first Digest challenge among the
// WWW-Authenticate header values.
func digestChallenge(header http.Header) (Challenge, bool) {
	for _, value := range header.Values("WWW-Authenticate") {
		scheme, rest, ok := strings.Cut(strings.TrimSpace(value), " ")
		if !ok || !strings.EqualFold(scheme, Scheme) {
			continue
		}

		challenge, err := ParseChallenge(rest)
		if err != nil {
			continue
		}

		return challenge, true
	}

	return Challenge{}, false
}
