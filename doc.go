// Package httpdigest implements the HTTP Digest authentication scheme per
// RFC 7616 (and its predecessors RFC 2617 and RFC 2069).
//
// It parses and serializes Digest credentials and challenges, computes
// response digests across all six algorithm variants (MD5, SHA-256,
// SHA-512-256 and their session forms), both qop modes (auth, auth-int),
// the legacy RFC 2069 mode, and the RFC 7616 userhash and extended
// username (username*) forms.
//
// All operations are pure functions over immutable values; no state is
// shared, so everything here is safe for concurrent use.
//
// # Validating Credentials
//
// Parse an Authorization header value and validate it against a known
// password:
//
//	cred, err := httpdigest.Parse(`username="Mufasa", realm="testrealm@host.com", ...`)
//	if err != nil {
//	    // malformed credential
//	}
//
//	if httpdigest.ValidateDigestUsingPassword(cred, "GET", nil, password) {
//	    // authenticated
//	}
//
// Systems that store htdigest-style precomputed secrets instead of
// plaintext passwords use the hashed-A1 entry points:
//
//	secret := httpdigest.GenerateSimpleHashedA1(httpdigest.AlgorithmMD5,
//	    httpdigest.PlainUsername("Mufasa"), "testrealm@host.com", password)
//
//	ok := httpdigest.ValidateDigestUsingHashedA1(cred, "GET", nil, secret)
//
// # Server Middleware
//
// DigestAuthMiddleware wraps an http.Handler and challenges requests that
// lack valid credentials:
//
//	mw, err := httpdigest.DigestAuthMiddleware(httpdigest.DigestAuthConfig{
//	    Realm: "api@example.org",
//	    PasswordFunc: func(username, realm string) (string, bool) {
//	        return lookupPassword(username)
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.ListenAndServe(":8080", mw(handler))
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that answers Digest challenges
// automatically. Pass an *http.Transport to configure proxy, TLS, and
// timeout settings, or nil for sensible defaults:
//
//	transport, err := httpdigest.NewTransport(nil, httpdigest.TransportConfig{
//	    Username: "Mufasa",
//	    Password: "Circle of Life",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := &http.Client{Transport: transport}
//	resp, err := client.Get("https://api.example.com/resource")
//
// # SHA-512-256
//
// The SHA-512-256 variant is a full SHA-512 digest truncated to 64 hex
// characters rather than the distinct-IV SHA-512/256 function. This
// matches the RFC 7616 examples and deployed implementations.
package httpdigest
