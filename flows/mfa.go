package flows

import (
	"context"

	"github.com/stytchauth/stytch-client-go/api"
)

// AuthenticateTOTP submits a TOTP code as the secondary factor for a
// partially authenticated member.
func (o *Orchestrator) AuthenticateTOTP(ctx context.Context, organizationID, memberID, code string) (*Outcome, error) {
	intermediate := o.pendingIntermediate()
	if intermediate == "" {
		return nil, ErrNoIntermediateSession
	}

	resp, err := o.service.B2BTOTPAuthenticate(ctx, &api.B2BTOTPAuthenticateParams{
		IntermediateSessionToken: intermediate,
		OrganizationID:           organizationID,
		MemberID:                 memberID,
		Code:                     code,
		SessionDurationMinutes:   o.config.SessionDurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	return o.applyB2B(ctx, resp, o.sessions.LastAuthMethod())
}

// AuthenticateSMSOTP submits an SMS passcode as the secondary factor.
func (o *Orchestrator) AuthenticateSMSOTP(ctx context.Context, organizationID, memberID, code string) (*Outcome, error) {
	intermediate := o.pendingIntermediate()
	if intermediate == "" {
		return nil, ErrNoIntermediateSession
	}

	resp, err := o.service.B2BOTPSMSAuthenticate(ctx, &api.B2BOTPSMSAuthenticateParams{
		IntermediateSessionToken: intermediate,
		OrganizationID:           organizationID,
		MemberID:                 memberID,
		Code:                     code,
		SessionDurationMinutes:   o.config.SessionDurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	return o.applyB2B(ctx, resp, o.sessions.LastAuthMethod())
}
