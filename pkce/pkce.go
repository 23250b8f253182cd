// Package pkce implements the PKCE (RFC 7636) code-pair lifecycle that binds
// a redirect-based auth initiation to its completion. At most one pair is
// pending per session kind; generating a new pair invalidates the old one.
package pkce

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"github.com/pkg/errors"
)

// MethodS256 is the only challenge transform the SDK emits.
const MethodS256 = "S256"

const verifierByteLength = 32

var (
	// ErrCryptoUnavailable means the platform could not produce secure
	// randomness. Fatal to the current call, retryable.
	ErrCryptoUnavailable = errors.New("pkce: secure randomness unavailable")
	// ErrNotFound means no pair is pending for the session kind. Callers
	// completing a redirect must treat this as "abort this completion".
	ErrNotFound = errors.New("pkce: no code pair pending")
)

// CodePair is a verifier/challenge pair. The verifier stays local; only the
// challenge travels to the identity provider on flow start.
type CodePair struct {
	CodeVerifier  string `json:"code_verifier"`
	CodeChallenge string `json:"code_challenge"`
	Method        string `json:"method"`
}

// GeneratePair creates a fresh pair: a 32-byte random verifier, base64url
// encoded without padding, and the S256 challenge BASE64URL(SHA256(verifier)).
func GeneratePair() (CodePair, error) {
	b := make([]byte, verifierByteLength)
	if _, err := rand.Read(b); err != nil {
		return CodePair{}, errors.Wrap(ErrCryptoUnavailable, err.Error())
	}

	verifier := base64.RawURLEncoding.EncodeToString(b)
	sum := sha256.Sum256([]byte(verifier))

	return CodePair{
		CodeVerifier:  verifier,
		CodeChallenge: base64.RawURLEncoding.EncodeToString(sum[:]),
		Method:        MethodS256,
	}, nil
}
