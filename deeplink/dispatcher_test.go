package deeplink_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/stytchauth/stytch-client-go/deeplink"
	"github.com/stytchauth/stytch-client-go/flows"
)

type fakeAuthenticator struct {
	calls   []string
	tokens  []string
	outcome *flows.Outcome
	err     error
}

func (f *fakeAuthenticator) record(name, token string) (*flows.Outcome, error) {
	f.calls = append(f.calls, name)
	f.tokens = append(f.tokens, token)
	return f.outcome, f.err
}

func (f *fakeAuthenticator) AuthenticateMagicLink(_ context.Context, token string) (*flows.Outcome, error) {
	return f.record("AuthenticateMagicLink", token)
}

func (f *fakeAuthenticator) AuthenticateOAuth(_ context.Context, token string) (*flows.Outcome, error) {
	return f.record("AuthenticateOAuth", token)
}

func (f *fakeAuthenticator) B2BAuthenticateMagicLink(_ context.Context, token string) (*flows.Outcome, error) {
	return f.record("B2BAuthenticateMagicLink", token)
}

func (f *fakeAuthenticator) AuthenticateDiscoveryMagicLink(_ context.Context, token string) (*flows.Outcome, error) {
	return f.record("AuthenticateDiscoveryMagicLink", token)
}

func (f *fakeAuthenticator) B2BAuthenticateOAuth(_ context.Context, token string) (*flows.Outcome, error) {
	return f.record("B2BAuthenticateOAuth", token)
}

func (f *fakeAuthenticator) B2BAuthenticateDiscoveryOAuth(_ context.Context, token string) (*flows.Outcome, error) {
	return f.record("B2BAuthenticateDiscoveryOAuth", token)
}

func (f *fakeAuthenticator) AuthenticateSSO(_ context.Context, token string) (*flows.Outcome, error) {
	return f.record("AuthenticateSSO", token)
}

func newDispatcher(t *testing.T, auth *fakeAuthenticator) *deeplink.Dispatcher {
	t.Helper()
	d, err := deeplink.NewDispatcher(auth, "myapp", "")
	require.NoError(t, err)
	return d
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestDispatcher_MagicLink(t *testing.T) {
	auth := &fakeAuthenticator{outcome: &flows.Outcome{Kind: flows.OutcomeFullyAuthenticated}}
	d := newDispatcher(t, auth)

	result, err := d.Handle(context.Background(), mustParse(t, "myapp://deeplink?token=T1&token_type=magic_links"))
	require.NoError(t, err)
	require.Equal(t, deeplink.Handled, result.Disposition)
	require.Equal(t, []string{"AuthenticateMagicLink"}, auth.calls)
	require.Equal(t, []string{"T1"}, auth.tokens)
	require.NotNil(t, result.Outcome)
	require.Equal(t, flows.OutcomeFullyAuthenticated, result.Outcome.Kind)
}

func TestDispatcher_ResetPasswordNeedsManualHandling(t *testing.T) {
	auth := &fakeAuthenticator{}
	d := newDispatcher(t, auth)

	result, err := d.Handle(context.Background(), mustParse(t, "myapp://deeplink?token=T1&token_type=reset_password"))
	require.NoError(t, err)
	require.Equal(t, deeplink.ManualHandlingRequired, result.Disposition)
	require.Equal(t, deeplink.TokenTypeResetPassword, result.Callback.Type)
	require.Equal(t, "T1", result.Callback.Token)

	// Manual handling must not trigger any network call.
	require.Empty(t, auth.calls)
}

func TestDispatcher_WrongScheme(t *testing.T) {
	auth := &fakeAuthenticator{}
	d := newDispatcher(t, auth)

	result, err := d.Handle(context.Background(), mustParse(t, "otherapp://deeplink?token=T1&token_type=magic_links"))
	require.NoError(t, err)
	require.Equal(t, deeplink.NotHandled, result.Disposition)
	require.Empty(t, auth.calls)
}

func TestDispatcher_MissingTokenIsNotHandled(t *testing.T) {
	auth := &fakeAuthenticator{}
	d := newDispatcher(t, auth)

	for _, raw := range []string{
		"myapp://deeplink?token_type=magic_links",
		"myapp://deeplink?token=T1",
		"myapp://deeplink",
	} {
		result, err := d.Handle(context.Background(), mustParse(t, raw))
		require.NoError(t, err, raw)
		require.Equal(t, deeplink.NotHandled, result.Disposition, raw)
	}
	require.Empty(t, auth.calls)
}

func TestDispatcher_UnknownTokenType(t *testing.T) {
	auth := &fakeAuthenticator{}
	d := newDispatcher(t, auth)

	result, err := d.Handle(context.Background(), mustParse(t, "myapp://deeplink?token=T1&token_type=brand_new_type"))
	require.NoError(t, err)
	require.Equal(t, deeplink.NotHandled, result.Disposition)
	require.Empty(t, auth.calls)
}

func TestDispatcher_HostFilter(t *testing.T) {
	auth := &fakeAuthenticator{outcome: &flows.Outcome{Kind: flows.OutcomeFullyAuthenticated}}
	d, err := deeplink.NewDispatcher(auth, "myapp", "auth")
	require.NoError(t, err)

	result, err := d.Handle(context.Background(), mustParse(t, "myapp://other?token=T1&token_type=oauth"))
	require.NoError(t, err)
	require.Equal(t, deeplink.NotHandled, result.Disposition)

	result, err = d.Handle(context.Background(), mustParse(t, "myapp://auth?token=T1&token_type=oauth"))
	require.NoError(t, err)
	require.Equal(t, deeplink.Handled, result.Disposition)
	require.Equal(t, []string{"AuthenticateOAuth"}, auth.calls)
}

func TestDispatcher_SurfacesFlowErrors(t *testing.T) {
	wantErr := errors.New("exchange failed")
	auth := &fakeAuthenticator{err: wantErr}
	d := newDispatcher(t, auth)

	result, err := d.Handle(context.Background(), mustParse(t, "myapp://deeplink?token=T1&token_type=oauth"))
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, deeplink.Handled, result.Disposition)
	require.Nil(t, result.Outcome)
}

func TestDispatcher_RoutesB2BTokenTypes(t *testing.T) {
	cases := []struct {
		tokenType string
		wantCall  string
	}{
		{"multi_tenant_magic_links", "B2BAuthenticateMagicLink"},
		{"multi_tenant_oauth", "B2BAuthenticateOAuth"},
		{"discovery", "AuthenticateDiscoveryMagicLink"},
		{"discovery_oauth", "B2BAuthenticateDiscoveryOAuth"},
		{"sso", "AuthenticateSSO"},
	}

	for _, tc := range cases {
		t.Run(tc.tokenType, func(t *testing.T) {
			auth := &fakeAuthenticator{outcome: &flows.Outcome{Kind: flows.OutcomeDiscoveryIntermediate}}
			d := newDispatcher(t, auth)

			result, err := d.Handle(context.Background(), mustParse(t, "myapp://deeplink?token=T9&token_type="+tc.tokenType))
			require.NoError(t, err)
			require.Equal(t, deeplink.Handled, result.Disposition)
			require.Equal(t, []string{tc.wantCall}, auth.calls)
			require.Equal(t, []string{"T9"}, auth.tokens)
		})
	}
}

func TestDispatcher_EmailHint(t *testing.T) {
	auth := &fakeAuthenticator{}
	d := newDispatcher(t, auth)

	result, err := d.Handle(context.Background(), mustParse(t, "myapp://deeplink?token=T1&token_type=invite&email=m%40example.com"))
	require.NoError(t, err)
	require.Equal(t, deeplink.ManualHandlingRequired, result.Disposition)
	require.Equal(t, "m@example.com", result.Callback.EmailHint)
}
