package flows

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/pkce"
)

// SendMagicLink emails a login link. A fresh PKCE pair binds the link to
// this install; the challenge travels in the email, the verifier stays
// local until the deep link comes back.
func (o *Orchestrator) SendMagicLink(ctx context.Context, email string) error {
	pair, err := o.consumerPKCE.GenerateAndStore(ctx)
	if err != nil {
		return err
	}

	return o.service.MagicLinksSend(ctx, &api.MagicLinksSendParams{
		Email:             email,
		LoginMagicLinkURL: o.config.LoginRedirectURL,
		PKCECodeChallenge: pair.CodeChallenge,
	})
}

// AuthenticateMagicLink redeems a magic-link token. When a pair is pending
// it is attached and consumed; when none is pending the call proceeds
// without one, since a link may legitimately be opened on a device that
// never initiated the send.
func (o *Orchestrator) AuthenticateMagicLink(ctx context.Context, token string) (*Outcome, error) {
	params := &api.MagicLinksAuthenticateParams{
		Token:                  token,
		SessionDurationMinutes: o.config.SessionDurationMinutes,
	}

	pair, err := o.consumerPKCE.Retrieve(ctx)
	switch {
	case err == nil:
		params.PKCECodeVerifier = pair.CodeVerifier
		defer func() {
			if clearErr := o.consumerPKCE.Clear(ctx); clearErr != nil {
				o.logger.Warn().Err(clearErr).Msg("failed to clear consumed pkce pair")
			}
		}()
	case errors.Is(err, pkce.ErrNotFound):
		// Cross-device redemption.
	default:
		return nil, err
	}

	resp, err := o.service.MagicLinksAuthenticate(ctx, params)
	if err != nil {
		return nil, err
	}
	return o.applyConsumer(ctx, resp, api.AuthMethodMagicLink)
}

// B2BAuthenticateMagicLink redeems an organization magic-link token,
// threading any pending intermediate session token so a discovery or
// pre-MFA flow continues where it left off.
func (o *Orchestrator) B2BAuthenticateMagicLink(ctx context.Context, token string) (*Outcome, error) {
	params := &api.B2BMagicLinksAuthenticateParams{
		Token:                    token,
		IntermediateSessionToken: o.pendingIntermediate(),
		SessionDurationMinutes:   o.config.SessionDurationMinutes,
	}

	pair, err := o.b2bPKCE.Retrieve(ctx)
	switch {
	case err == nil:
		params.PKCECodeVerifier = pair.CodeVerifier
		defer func() {
			if clearErr := o.b2bPKCE.Clear(ctx); clearErr != nil {
				o.logger.Warn().Err(clearErr).Msg("failed to clear consumed pkce pair")
			}
		}()
	case errors.Is(err, pkce.ErrNotFound):
	default:
		return nil, err
	}

	resp, err := o.service.B2BMagicLinksAuthenticate(ctx, params)
	if err != nil {
		return nil, err
	}
	return o.applyB2B(ctx, resp, api.AuthMethodMagicLink)
}

// SendDiscoveryMagicLink emails a discovery link: the recipient proves
// their address first and picks an organization afterwards.
func (o *Orchestrator) SendDiscoveryMagicLink(ctx context.Context, email string) error {
	pair, err := o.b2bPKCE.GenerateAndStore(ctx)
	if err != nil {
		return err
	}

	return o.service.B2BMagicLinksDiscoverySend(ctx, &api.B2BMagicLinksDiscoverySendParams{
		EmailAddress:      email,
		DiscoveryURL:      o.config.LoginRedirectURL,
		PKCECodeChallenge: pair.CodeChallenge,
	})
}

// AuthenticateDiscoveryMagicLink redeems a discovery magic-link token. The
// PKCE pair is required here: discovery links are always initiated and
// completed on the same install.
func (o *Orchestrator) AuthenticateDiscoveryMagicLink(ctx context.Context, token string) (*Outcome, error) {
	var outcome *Outcome
	err := o.consumePKCE(ctx, o.b2bPKCE, func(pair pkce.CodePair) error {
		resp, callErr := o.service.B2BMagicLinksDiscoveryAuthenticate(ctx, &api.B2BMagicLinksDiscoveryAuthenticateParams{
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
