package flows

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/pkce"
)

// OAuthStart describes a redirect the caller must hand to the external
// browser. Completion arrives later through the deep-link dispatcher.
type OAuthStart struct {
	URL   string
	State string
}

// StartOAuth generates a fresh PKCE pair and builds the provider start URL
// with the challenge embedded. The verifier never leaves the device; it is
// presented when the callback token is exchanged.
func (o *Orchestrator) StartOAuth(ctx context.Context, provider string) (*OAuthStart, error) {
	pair, err := o.consumerPKCE.GenerateAndStore(ctx)
	if err != nil {
		return nil, err
	}
	return o.buildStartURL("/public/oauth/"+provider+"/start", pair)
}

// StartB2BOAuth is StartOAuth for the organization stack, with its own PKCE
// slot so a concurrent consumer flow is unaffected.
func (o *Orchestrator) StartB2BOAuth(ctx context.Context, provider, organizationID string) (*OAuthStart, error) {
	pair, err := o.b2bPKCE.GenerateAndStore(ctx)
	if err != nil {
		return nil, err
	}

	start, err := o.buildStartURL("/b2b/public/oauth/"+provider+"/start", pair)
	if err != nil {
		return nil, err
	}
	if organizationID != "" {
		start.URL += "&organization_id=" + organizationID
	}
	return start, nil
}

func (o *Orchestrator) buildStartURL(path string, pair pkce.CodePair) (*OAuthStart, error) {
	state := uuid.NewString()
	conf := oauth2.Config{
		ClientID:    o.config.PublicToken,
		RedirectURL: o.config.LoginRedirectURL,
		Endpoint:    oauth2.Endpoint{AuthURL: o.config.PublicBaseURL + path},
	}
	url := conf.AuthCodeURL(state,
		oauth2.SetAuthURLParam("public_token", o.config.PublicToken),
		oauth2.SetAuthURLParam("pkce_code_challenge", pair.CodeChallenge),
		oauth2.SetAuthURLParam("pkce_code_challenge_method", pair.Method),
		oauth2.SetAuthURLParam("login_redirect_url", o.config.LoginRedirectURL),
		oauth2.SetAuthURLParam("signup_redirect_url", o.config.SignupRedirectURL),
	)
	return &OAuthStart{URL: url, State: state}, nil
}

// AuthenticateOAuth exchanges the callback token for a session, consuming
// the pending PKCE pair. The pair is cleared whether or not the exchange
// succeeds; the service invalidates challenges on first use.
func (o *Orchestrator) AuthenticateOAuth(ctx context.Context, token string) (*Outcome, error) {
	var outcome *Outcome
	err := o.consumePKCE(ctx, o.consumerPKCE, func(pair pkce.CodePair) error {
		resp, callErr := o.service.OAuthAuthenticate(ctx, &api.OAuthAuthenticateParams{
			Token:                  token,
			PKCECodeVerifier:       pair.CodeVerifier,
			SessionDurationMinutes: o.config.SessionDurationMinutes,
		})
		if callErr != nil {
			return callErr
		}
		outcome, callErr = o.applyConsumer(ctx, resp, api.AuthMethodOAuth)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// B2BAuthenticateOAuth is the organization-stack exchange; the classifier
// decides whether MFA or a primary factor is still owed.
func (o *Orchestrator) B2BAuthenticateOAuth(ctx context.Context, token string) (*Outcome, error) {
	var outcome *Outcome
	err := o.consumePKCE(ctx, o.b2bPKCE, func(pair pkce.CodePair) error {
		resp, callErr := o.service.B2BOAuthAuthenticate(ctx, &api.B2BOAuthAuthenticateParams{
			Token:                    token,
			PKCECodeVerifier:         pair.CodeVerifier,
			IntermediateSessionToken: o.pendingIntermediate(),
			SessionDurationMinutes:   o.config.SessionDurationMinutes,
		})
		if callErr != nil {
			return callErr
		}
		outcome, callErr = o.applyB2B(ctx, resp, api.AuthMethodOAuth)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// B2BAuthenticateDiscoveryOAuth exchanges a discovery OAuth token; the
// result is always an intermediate state listing the member's organizations.
func (o *Orchestrator) B2BAuthenticateDiscoveryOAuth(ctx context.Context, token string) (*Outcome, error) {
	var outcome *Outcome
	err := o.consumePKCE(ctx, o.b2bPKCE, func(pair pkce.CodePair) error {
		resp, callErr := o.service.B2BOAuthDiscoveryAuthenticate(ctx, &api.B2BOAuthDiscoveryAuthenticateParams{
			Token:            token,
			PKCECodeVerifier: pair.CodeVerifier,
		})
		if callErr != nil {
			return callErr
		}
		outcome, callErr = o.applyDiscovery(resp)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
