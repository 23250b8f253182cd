package api

import "context"

// Service is the network collaborator the SDK core calls into. Each method
// maps to one identity-service endpoint; implementations own transport
// concerns (timeouts, serialization) and return either a typed payload or a
// *ServerError. The core never special-cases status codes beyond that.
type Service interface {
	// Consumer flows.
	PasswordsAuthenticate(ctx context.Context, params *PasswordsAuthenticateParams) (*AuthenticateResponse, error)
	PasswordsResetByEmailStart(ctx context.Context, params *ResetByEmailStartParams) error
	PasswordsResetByEmail(ctx context.Context, params *ResetByEmailParams) (*AuthenticateResponse, error)
	MagicLinksSend(ctx context.Context, params *MagicLinksSendParams) error
	MagicLinksAuthenticate(ctx context.Context, params *MagicLinksAuthenticateParams) (*AuthenticateResponse, error)
	OTPsSend(ctx context.Context, params *OTPsSendParams) (methodID string, err error)
	OTPsAuthenticate(ctx context.Context, params *OTPsAuthenticateParams) (*AuthenticateResponse, error)
	OAuthAuthenticate(ctx context.Context, params *OAuthAuthenticateParams) (*AuthenticateResponse, error)
	SessionsAuthenticate(ctx context.Context, params *SessionsAuthenticateParams) (*AuthenticateResponse, error)
	SessionsRevoke(ctx context.Context, params *SessionsRevokeParams) error

	// B2B (organization) flows.
	B2BPasswordsAuthenticate(ctx context.Context, params *B2BPasswordsAuthenticateParams) (*B2BAuthenticateResponse, error)
	B2BMagicLinksAuthenticate(ctx context.Context, params *B2BMagicLinksAuthenticateParams) (*B2BAuthenticateResponse, error)
	B2BMagicLinksDiscoverySend(ctx context.Context, params *B2BMagicLinksDiscoverySendParams) error
	B2BMagicLinksDiscoveryAuthenticate(ctx context.Context, params *B2BMagicLinksDiscoveryAuthenticateParams) (*DiscoveryAuthenticateResponse, error)
	B2BOAuthAuthenticate(ctx context.Context, params *B2BOAuthAuthenticateParams) (*B2BAuthenticateResponse, error)
	B2BOAuthDiscoveryAuthenticate(ctx context.Context, params *B2BOAuthDiscoveryAuthenticateParams) (*DiscoveryAuthenticateResponse, error)
	B2BSSOAuthenticate(ctx context.Context, params *B2BSSOAuthenticateParams) (*B2BAuthenticateResponse, error)
	B2BDiscoveryOrganizations(ctx context.Context, params *B2BDiscoveryOrganizationsParams) (*DiscoveryOrganizationsResponse, error)
	B2BExchangeIntermediateSession(ctx context.Context, params *B2BExchangeIntermediateSessionParams) (*B2BAuthenticateResponse, error)
	B2BTOTPAuthenticate(ctx context.Context, params *B2BTOTPAuthenticateParams) (*B2BAuthenticateResponse, error)
	B2BOTPSMSAuthenticate(ctx context.Context, params *B2BOTPSMSAuthenticateParams) (*B2BAuthenticateResponse, error)
}
