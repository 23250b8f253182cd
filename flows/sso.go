package flows

import (
	"context"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/pkce"
)

// StartSSO builds the start URL for a SAML/OIDC connection, with a fresh
// B2B PKCE pair bound to the redirect.
func (o *Orchestrator) StartSSO(ctx context.Context, connectionID string) (*OAuthStart, error) {
	pair, err := o.b2bPKCE.GenerateAndStore(ctx)
	if err != nil {
		return nil, err
	}

	start, err := o.buildStartURL("/b2b/public/sso/start", pair)
	if err != nil {
		return nil, err
	}
	start.URL += "&connection_id=" + connectionID
	return start, nil
}

// AuthenticateSSO exchanges the SSO callback token, consuming the pending
// pair on every exit path.
func (o *Orchestrator) AuthenticateSSO(ctx context.Context, token string) (*Outcome, error) {
	var outcome *Outcome
	err := o.consumePKCE(ctx, o.b2bPKCE, func(pair pkce.CodePair) error {
		resp, callErr := o.service.B2BSSOAuthenticate(ctx, &api.B2BSSOAuthenticateParams{
			Token:                    token,
			PKCECodeVerifier:         pair.CodeVerifier,
			IntermediateSessionToken: o.pendingIntermediate(),
			SessionDurationMinutes:   o.config.SessionDurationMinutes,
		})
		if callErr != nil {
			return callErr
		}
		outcome, callErr = o.applyB2B(ctx, resp, api.AuthMethodSSO)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
