package flows

import (
	"context"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/pkce"
)

// AuthenticatePassword performs a direct consumer password login.
func (o *Orchestrator) AuthenticatePassword(ctx context.Context, email, password string) (*Outcome, error) {
	resp, err := o.service.PasswordsAuthenticate(ctx, &api.PasswordsAuthenticateParams{
		Email:                  email,
		Password:               password,
		SessionDurationMinutes: o.config.SessionDurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	return o.applyConsumer(ctx, resp, api.AuthMethodPassword)
}

// B2BAuthenticatePassword logs a member into a specific organization. The
// response may demand MFA; the intermediate token is retained for the
// followup factor automatically.
func (o *Orchestrator) B2BAuthenticatePassword(ctx context.Context, organizationID, email, password string) (*Outcome, error) {
	resp, err := o.service.B2BPasswordsAuthenticate(ctx, &api.B2BPasswordsAuthenticateParams{
		OrganizationID:           organizationID,
		EmailAddress:             email,
		Password:                 password,
		IntermediateSessionToken: o.pendingIntermediate(),
		SessionDurationMinutes:   o.config.SessionDurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	return o.applyB2B(ctx, resp, api.AuthMethodPassword)
}

// ResetPasswordByEmailStart begins the email reset flow. The generated PKCE
// challenge rides along in the email link so the completion call can prove
// it started here.
func (o *Orchestrator) ResetPasswordByEmailStart(ctx context.Context, email string) error {
	pair, err := o.consumerPKCE.GenerateAndStore(ctx)
	if err != nil {
		return err
	}

	return o.service.PasswordsResetByEmailStart(ctx, &api.ResetByEmailStartParams{
		Email:             email,
		ResetPasswordURL:  o.config.LoginRedirectURL,
		LoginRedirectURL:  o.config.LoginRedirectURL,
		PKCECodeChallenge: pair.CodeChallenge,
	})
}

// ResetPasswordByEmail completes the reset with the token from the email
// deep link plus the user's new password. Fails fast with ErrMissingPKCE
// when no pair is pending — a missing pair means replay, a different
// install, or flow corruption.
func (o *Orchestrator) ResetPasswordByEmail(ctx context.Context, token, newPassword string) (*Outcome, error) {
	var outcome *Outcome
	err := o.consumePKCE(ctx, o.consumerPKCE, func(pair pkce.CodePair) error {
		resp, callErr := o.service.PasswordsResetByEmail(ctx, &api.ResetByEmailParams{
			Token:                  token,
			Password:               newPassword,
			PKCECodeVerifier:       pair.CodeVerifier,
			SessionDurationMinutes: o.config.SessionDurationMinutes,
		})
		if callErr != nil {
			return callErr
		}
		outcome, callErr = o.applyConsumer(ctx, resp, api.AuthMethodPassword)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
