// Package sessions owns the locally persisted session state: the token/JWT
// pair, who it belongs to (consumer user or B2B member+organization), and a
// publish/subscribe channel for session availability changes.
package sessions

import "github.com/stytchauth/stytch-client-go/api"

// Identity is the locally stored result of a successful authenticate or
// refresh call. The opaque token and the JWT are always written together;
// the service issues both on every success.
type Identity struct {
	// Exactly one of UserID or MemberID/OrganizationID is set, depending
	// on whether the session came from a consumer or a B2B flow.
	UserID         string `json:"user_id,omitempty"`
	MemberID       string `json:"member_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`

	SessionToken string `json:"session_token"`
	SessionJWT   string `json:"session_jwt"`
}

// IsB2B reports whether the identity belongs to an organization member.
func (i Identity) IsB2B() bool {
	return i.MemberID != "" || i.OrganizationID != ""
}

// EventKind discriminates session lifecycle events.
type EventKind int

const (
	// SessionAvailable fires when an identity is stored or replaced.
	SessionAvailable EventKind = iota
	// SessionUnavailable fires when the stored identity is cleared.
	SessionUnavailable
)

func (k EventKind) String() string {
	switch k {
	case SessionAvailable:
		return "session_available"
	case SessionUnavailable:
		return "session_unavailable"
	}
	return "unknown"
}

// Event is delivered to subscribers on each session transition, exactly once
// per transition.
type Event struct {
	Kind     EventKind
	Identity *Identity // set for SessionAvailable, nil otherwise
}

// LastAuthMethod records which factor most recently produced a session; UI
// layers use it for "you last signed in with …" hints.
type LastAuthMethod = api.AuthMethod
