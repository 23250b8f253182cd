package flows

import (
	"context"

	"github.com/pkg/errors"

	"github.com/stytchauth/stytch-client-go/api"
)

// SendOTP delivers a one-time passcode to an email address or phone number
// and returns the method ID the authenticate call must echo back.
func (o *Orchestrator) SendOTP(ctx context.Context, email, phoneNumber string) (string, error) {
	if email == "" && phoneNumber == "" {
		return "", errors.New("[Orchestrator.SendOTP] email or phone number is required")
	}

	return o.service.OTPsSend(ctx, &api.OTPsSendParams{
		Email:       email,
		PhoneNumber: phoneNumber,
	})
}

// AuthenticateOTP redeems the user-entered code. OTP is a direct flow: no
// redirect, no PKCE.
func (o *Orchestrator) AuthenticateOTP(ctx context.Context, methodID, code string) (*Outcome, error) {
	resp, err := o.service.OTPsAuthenticate(ctx, &api.OTPsAuthenticateParams{
		MethodID:               methodID,
		Code:                   code,
		SessionDurationMinutes: o.config.SessionDurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	return o.applyConsumer(ctx, resp, api.AuthMethodEmailOTP)
}
