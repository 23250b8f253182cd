package api

// Consumer flow parameters.

type PasswordsAuthenticateParams struct {
	Email                  string `json:"email"`
	Password               string `json:"password"`
	SessionDurationMinutes int    `json:"session_duration_minutes"`
}

type ResetByEmailStartParams struct {
	Email             string `json:"email"`
	ResetPasswordURL  string `json:"reset_password_redirect_url,omitempty"`
	LoginRedirectURL  string `json:"login_redirect_url,omitempty"`
	PKCECodeChallenge string `json:"code_challenge,omitempty"`
}

type ResetByEmailParams struct {
	Token                  string `json:"token"`
	Password               string `json:"password"`
	PKCECodeVerifier       string `json:"code_verifier"`
	SessionDurationMinutes int    `json:"session_duration_minutes"`
}

type MagicLinksSendParams struct {
	Email             string `json:"email"`
	LoginMagicLinkURL string `json:"login_magic_link_url,omitempty"`
	PKCECodeChallenge string `json:"code_challenge,omitempty"`
}

type MagicLinksAuthenticateParams struct {
	Token                  string `json:"token"`
	PKCECodeVerifier       string `json:"code_verifier,omitempty"`
	SessionDurationMinutes int    `json:"session_duration_minutes"`
}

type OTPsSendParams struct {
	Email             string `json:"email,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	ExpirationMinutes int    `json:"expiration_minutes,omitempty"`
}

type OTPsAuthenticateParams struct {
	MethodID               string `json:"method_id"`
	Code                   string `json:"code"`
	SessionDurationMinutes int    `json:"session_duration_minutes"`
}

type OAuthAuthenticateParams struct {
	Token                  string `json:"token"`
	PKCECodeVerifier       string `json:"code_verifier"`
	SessionDurationMinutes int    `json:"session_duration_minutes"`
}

type SessionsAuthenticateParams struct {
	SessionToken           string `json:"session_token"`
	SessionDurationMinutes int    `json:"session_duration_minutes,omitempty"`
}

type SessionsRevokeParams struct {
	SessionToken string `json:"session_token"`
}

// B2B flow parameters. IntermediateSessionToken continues a previously
// started discovery or pre-MFA flow; the orchestrator threads it in.

type B2BPasswordsAuthenticateParams struct {
	OrganizationID           string `json:"organization_id"`
	EmailAddress             string `json:"email_address"`
	Password                 string `json:"password"`
	IntermediateSessionToken string `json:"intermediate_session_token,omitempty"`
	SessionDurationMinutes   int    `json:"session_duration_minutes"`
}

type B2BMagicLinksAuthenticateParams struct {
	Token                    string `json:"magic_links_token"`
	PKCECodeVerifier         string `json:"pkce_code_verifier,omitempty"`
	IntermediateSessionToken string `json:"intermediate_session_token,omitempty"`
	SessionDurationMinutes   int    `json:"session_duration_minutes"`
}

type B2BMagicLinksDiscoverySendParams struct {
	EmailAddress      string `json:"email_address"`
	DiscoveryURL      string `json:"discovery_redirect_url,omitempty"`
	PKCECodeChallenge string `json:"pkce_code_challenge,omitempty"`
}

type B2BMagicLinksDiscoveryAuthenticateParams struct {
	Token            string `json:"discovery_magic_links_token"`
	PKCECodeVerifier string `json:"pkce_code_verifier"`
}

type B2BOAuthAuthenticateParams struct {
	Token                    string `json:"oauth_token"`
	PKCECodeVerifier         string `json:"pkce_code_verifier"`
	IntermediateSessionToken string `json:"intermediate_session_token,omitempty"`
	SessionDurationMinutes   int    `json:"session_duration_minutes"`
}

type B2BOAuthDiscoveryAuthenticateParams struct {
	Token            string `json:"discovery_oauth_token"`
	PKCECodeVerifier string `json:"pkce_code_verifier"`
}

type B2BSSOAuthenticateParams struct {
	Token                    string `json:"sso_token"`
	PKCECodeVerifier         string `json:"pkce_code_verifier"`
	IntermediateSessionToken string `json:"intermediate_session_token,omitempty"`
	SessionDurationMinutes   int    `json:"session_duration_minutes"`
}

type B2BDiscoveryOrganizationsParams struct {
	IntermediateSessionToken string `json:"intermediate_session_token"`
}

type B2BExchangeIntermediateSessionParams struct {
	IntermediateSessionToken string `json:"intermediate_session_token"`
	OrganizationID           string `json:"organization_id"`
	SessionDurationMinutes   int    `json:"session_duration_minutes"`
}

type B2BTOTPAuthenticateParams struct {
	IntermediateSessionToken string `json:"intermediate_session_token"`
	OrganizationID           string `json:"organization_id"`
	MemberID                 string `json:"member_id"`
	Code                     string `json:"code"`
	SessionDurationMinutes   int    `json:"session_duration_minutes"`
}

type B2BOTPSMSAuthenticateParams struct {
	IntermediateSessionToken string `json:"intermediate_session_token"`
	OrganizationID           string `json:"organization_id"`
	MemberID                 string `json:"member_id"`
	Code                     string `json:"code"`
	SessionDurationMinutes   int    `json:"session_duration_minutes"`
}
