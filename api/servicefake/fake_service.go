// Package fakeapiservice provides a scriptable in-memory api.Service for
// tests: script each endpoint's response or error, then assert on the calls
// the code under test made.
package fakeapiservice

import (
	"context"
	"sync"

	"github.com/stytchauth/stytch-client-go/api"
)

var _ api.Service = (*FakeService)(nil)

// FakeService records every call and replays scripted responses. The zero
// value of any unscripted response field makes the corresponding method
// return an empty payload, which most tests treat as a misconfiguration —
// script what you use.
type FakeService struct {
	lock  sync.Mutex
	calls []string

	// Scripted responses, one field per endpoint.
	AuthenticateResponse  *api.AuthenticateResponse
	B2BResponse           *api.B2BAuthenticateResponse
	DiscoveryResponse     *api.DiscoveryAuthenticateResponse
	OrganizationsResponse *api.DiscoveryOrganizationsResponse
	OTPMethodID           string
	Err                   error

	// LastParams holds the most recent params value passed to any endpoint.
	LastParams any
}

func NewFakeService() *FakeService {
	return &FakeService{}
}

// Calls lists endpoint names in invocation order.
func (f *FakeService) Calls() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount reports how many endpoint calls were made in total.
func (f *FakeService) CallCount() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.calls)
}

func (f *FakeService) record(name string, params any) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.calls = append(f.calls, name)
	f.LastParams = params
}

func (f *FakeService) PasswordsAuthenticate(_ context.Context, params *api.PasswordsAuthenticateParams) (*api.AuthenticateResponse, error) {
	f.record("PasswordsAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AuthenticateResponse, nil
}

func (f *FakeService) PasswordsResetByEmailStart(_ context.Context, params *api.ResetByEmailStartParams) error {
	f.record("PasswordsResetByEmailStart", params)
	return f.Err
}

func (f *FakeService) PasswordsResetByEmail(_ context.Context, params *api.ResetByEmailParams) (*api.AuthenticateResponse, error) {
	f.record("PasswordsResetByEmail", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AuthenticateResponse, nil
}

func (f *FakeService) MagicLinksSend(_ context.Context, params *api.MagicLinksSendParams) error {
	f.record("MagicLinksSend", params)
	return f.Err
}

func (f *FakeService) MagicLinksAuthenticate(_ context.Context, params *api.MagicLinksAuthenticateParams) (*api.AuthenticateResponse, error) {
	f.record("MagicLinksAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AuthenticateResponse, nil
}

func (f *FakeService) OTPsSend(_ context.Context, params *api.OTPsSendParams) (string, error) {
	f.record("OTPsSend", params)
	if f.Err != nil {
		return "", f.Err
	}
	return f.OTPMethodID, nil
}

func (f *FakeService) OTPsAuthenticate(_ context.Context, params *api.OTPsAuthenticateParams) (*api.AuthenticateResponse, error) {
	f.record("OTPsAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AuthenticateResponse, nil
}

func (f *FakeService) OAuthAuthenticate(_ context.Context, params *api.OAuthAuthenticateParams) (*api.AuthenticateResponse, error) {
	f.record("OAuthAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AuthenticateResponse, nil
}

func (f *FakeService) SessionsAuthenticate(_ context.Context, params *api.SessionsAuthenticateParams) (*api.AuthenticateResponse, error) {
	f.record("SessionsAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AuthenticateResponse, nil
}

func (f *FakeService) SessionsRevoke(_ context.Context, params *api.SessionsRevokeParams) error {
	f.record("SessionsRevoke", params)
	return f.Err
}

func (f *FakeService) B2BPasswordsAuthenticate(_ context.Context, params *api.B2BPasswordsAuthenticateParams) (*api.B2BAuthenticateResponse, error) {
	f.record("B2BPasswordsAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.B2BResponse, nil
}

func (f *FakeService) B2BMagicLinksAuthenticate(_ context.Context, params *api.B2BMagicLinksAuthenticateParams) (*api.B2BAuthenticateResponse, error) {
	f.record("B2BMagicLinksAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.B2BResponse, nil
}

func (f *FakeService) B2BMagicLinksDiscoverySend(_ context.Context, params *api.B2BMagicLinksDiscoverySendParams) error {
	f.record("B2BMagicLinksDiscoverySend", params)
	return f.Err
}

func (f *FakeService) B2BMagicLinksDiscoveryAuthenticate(_ context.Context, params *api.B2BMagicLinksDiscoveryAuthenticateParams) (*api.DiscoveryAuthenticateResponse, error) {
	f.record("B2BMagicLinksDiscoveryAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.DiscoveryResponse, nil
}

func (f *FakeService) B2BOAuthAuthenticate(_ context.Context, params *api.B2BOAuthAuthenticateParams) (*api.B2BAuthenticateResponse, error) {
	f.record("B2BOAuthAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.B2BResponse, nil
}

func (f *FakeService) B2BOAuthDiscoveryAuthenticate(_ context.Context, params *api.B2BOAuthDiscoveryAuthenticateParams) (*api.DiscoveryAuthenticateResponse, error) {
	f.record("B2BOAuthDiscoveryAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.DiscoveryResponse, nil
}

func (f *FakeService) B2BSSOAuthenticate(_ context.Context, params *api.B2BSSOAuthenticateParams) (*api.B2BAuthenticateResponse, error) {
	f.record("B2BSSOAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.B2BResponse, nil
}

func (f *FakeService) B2BDiscoveryOrganizations(_ context.Context, params *api.B2BDiscoveryOrganizationsParams) (*api.DiscoveryOrganizationsResponse, error) {
	f.record("B2BDiscoveryOrganizations", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.OrganizationsResponse, nil
}

func (f *FakeService) B2BExchangeIntermediateSession(_ context.Context, params *api.B2BExchangeIntermediateSessionParams) (*api.B2BAuthenticateResponse, error) {
	f.record("B2BExchangeIntermediateSession", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.B2BResponse, nil
}

func (f *FakeService) B2BTOTPAuthenticate(_ context.Context, params *api.B2BTOTPAuthenticateParams) (*api.B2BAuthenticateResponse, error) {
	f.record("B2BTOTPAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.B2BResponse, nil
}

func (f *FakeService) B2BOTPSMSAuthenticate(_ context.Context, params *api.B2BOTPSMSAuthenticateParams) (*api.B2BAuthenticateResponse, error) {
	f.record("B2BOTPSMSAuthenticate", params)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.B2BResponse, nil
}
