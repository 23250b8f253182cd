package sessions

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
)

// Verifier checks session JWT signatures against the project's published
// key set, for embedders that want local trust decisions instead of a
// round trip to /sessions/authenticate.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier builds a Verifier from the project's JWKS endpoint. projectID
// is both the expected issuer suffix and the audience on session JWTs.
func NewVerifier(ctx context.Context, jwksURL, projectID string) (*Verifier, error) {
	if jwksURL == "" {
		return nil, errors.New("[sessions.NewVerifier] jwksURL is required")
	}
	if projectID == "" {
		return nil, errors.New("[sessions.NewVerifier] projectID is required")
	}

	keySet := oidc.NewRemoteKeySet(ctx, jwksURL)
	verifier := oidc.NewVerifier(
		"stytch.com/"+projectID,
		keySet,
		&oidc.Config{ClientID: projectID},
	)
	return &Verifier{verifier: verifier}, nil
}

// Verify validates signature, issuer, audience and expiry, and returns the
// parsed claims on success.
func (v *Verifier) Verify(ctx context.Context, sessionJWT string) (*Claims, error) {
	token, err := v.verifier.Verify(ctx, sessionJWT)
	if err != nil {
		return nil, errors.Wrap(err, "[Verifier.Verify] session jwt rejected")
	}

	claims, err := ParseClaims(sessionJWT)
	if err != nil {
		return nil, err
	}
	claims.Subject = token.Subject
	return claims, nil
}
