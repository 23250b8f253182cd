// Package api defines the typed contract with the remote identity service:
// request/response shapes, the Service interface the rest of the SDK depends
// on, and a default JSON-over-HTTP implementation.
package api

// MFAMethod is a secondary authentication factor.
type MFAMethod string

const (
	MFAMethodTOTP   MFAMethod = "totp"
	MFAMethodSMSOTP MFAMethod = "sms_otp"
)

// AuthMethod is a primary authentication factor name as reported by the
// service in primary_required responses.
type AuthMethod string

const (
	AuthMethodPassword  AuthMethod = "password"
	AuthMethodMagicLink AuthMethod = "magic_link"
	AuthMethodOAuth     AuthMethod = "oauth"
	AuthMethodSSO       AuthMethod = "sso"
	AuthMethodEmailOTP  AuthMethod = "email_otp"
)

type User struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

type Member struct {
	MemberID     string `json:"member_id"`
	EmailAddress string `json:"email_address"`
	Name         string `json:"name,omitempty"`
}

type Organization struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"organization_name"`
	Slug           string `json:"organization_slug,omitempty"`
}

// MFARequired reports that the member owes a secondary factor before the
// session is issued.
type MFARequired struct {
	AllowedMethods []MFAMethod `json:"allowed_methods"`
}

// PrimaryRequired reports that the chosen organization demands a (stronger)
// primary factor before MFA is even evaluated.
type PrimaryRequired struct {
	AllowedAuthMethods []AuthMethod `json:"allowed_auth_methods"`
}

type DiscoveredOrganization struct {
	Organization   Organization `json:"organization"`
	MembershipType string       `json:"membership_type"`
}

// AuthenticateResponse is the consumer-side success payload. The service
// always issues the opaque token and the JWT together.
type AuthenticateResponse struct {
	RequestID    string `json:"request_id"`
	UserID       string `json:"user_id"`
	User         *User  `json:"user,omitempty"`
	SessionToken string `json:"session_token"`
	SessionJWT   string `json:"session_jwt"`
}

// B2BAuthenticateResponse is the organization-side payload. Depending on the
// flow state it carries a full session, an MFA demand, or a primary-factor
// demand plus an intermediate session token.
type B2BAuthenticateResponse struct {
	RequestID                string           `json:"request_id"`
	Member                   *Member          `json:"member,omitempty"`
	Organization             *Organization    `json:"organization,omitempty"`
	MemberAuthenticated      bool             `json:"member_authenticated"`
	SessionToken             string           `json:"session_token,omitempty"`
	SessionJWT               string           `json:"session_jwt,omitempty"`
	IntermediateSessionToken string           `json:"intermediate_session_token,omitempty"`
	MFARequired              *MFARequired     `json:"mfa_required,omitempty"`
	PrimaryRequired          *PrimaryRequired `json:"primary_required,omitempty"`
}

// DiscoveryAuthenticateResponse is returned by discovery-flavoured
// authenticate calls: the principal is verified but not yet bound to an
// organization.
type DiscoveryAuthenticateResponse struct {
	RequestID                string                   `json:"request_id"`
	IntermediateSessionToken string                   `json:"intermediate_session_token"`
	EmailAddress             string                   `json:"email_address"`
	DiscoveredOrganizations  []DiscoveredOrganization `json:"discovered_organizations"`
}

type DiscoveryOrganizationsResponse struct {
	RequestID               string                   `json:"request_id"`
	EmailAddress            string                   `json:"email_address"`
	DiscoveredOrganizations []DiscoveredOrganization `json:"discovered_organizations"`
}
