package sessions

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Claims is the locally useful subset of the session JWT payload. Parsing
// here is unverified — it serves expiry checks and UI hints only. Trust
// decisions belong to the Verifier (or the identity service itself).
type Claims struct {
	Subject        string
	ExpiresAt      time.Time
	IssuedAt       time.Time
	OrganizationID string
}

type sessionJWTClaims struct {
	jwt.RegisteredClaims
	Organization struct {
		OrganizationID string `json:"organization_id"`
	} `json:"https://stytch.com/organization"`
}

// ParseClaims decodes the session JWT without verifying its signature.
func ParseClaims(sessionJWT string) (*Claims, error) {
	var raw sessionJWTClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(sessionJWT, &raw); err != nil {
		return nil, errors.Wrap(err, "[sessions.ParseClaims] malformed session jwt")
	}

	claims := &Claims{
		Subject:        raw.Subject,
		OrganizationID: raw.Organization.OrganizationID,
	}
	if raw.ExpiresAt != nil {
		claims.ExpiresAt = raw.ExpiresAt.Time
	}
	if raw.IssuedAt != nil {
		claims.IssuedAt = raw.IssuedAt.Time
	}
	return claims, nil
}

// Expired reports whether the JWT's exp claim has passed. A JWT without an
// exp claim is treated as expired; callers should fall back to the opaque
// token and let the service decide.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return now.After(c.ExpiresAt)
}
