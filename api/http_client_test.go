package api_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/internal/idptest"
)

func newTestClient(t *testing.T) (*api.HTTPClient, *idptest.Server) {
	t.Helper()

	server := idptest.NewServer()
	t.Cleanup(server.Close)

	client, err := api.NewHTTPClient(server.URL(), "public-token-test")
	require.NoError(t, err)
	return client, server
}

func TestHTTPClient_PasswordsAuthenticate(t *testing.T) {
	client, server := newTestClient(t)
	server.RespondJSON("/passwords/authenticate", 200, map[string]any{
		"request_id":    "req-1",
		"user_id":       "user-1",
		"session_token": "opaque-1",
		"session_jwt":   "jwt-1",
	})

	resp, err := client.PasswordsAuthenticate(context.Background(), &api.PasswordsAuthenticateParams{
		Email:                  "u@example.com",
		Password:               "hunter2",
		SessionDurationMinutes: 30,
	})
	require.NoError(t, err)
	require.Equal(t, "user-1", resp.UserID)
	require.Equal(t, "opaque-1", resp.SessionToken)
	require.Equal(t, "jwt-1", resp.SessionJWT)

	requests := server.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, "u@example.com", requests[0].Body["email"])
	require.Equal(t, float64(30), requests[0].Body["session_duration_minutes"])
}

func TestHTTPClient_ServerErrorMapping(t *testing.T) {
	client, server := newTestClient(t)
	server.RespondJSON("/oauth/authenticate", 400, map[string]any{
		"error_type":    "oauth_token_not_found",
		"error_message": "token expired or already used",
	})

	_, err := client.OAuthAuthenticate(context.Background(), &api.OAuthAuthenticateParams{
		Token:            "bad",
		PKCECodeVerifier: "verifier",
	})
	require.Error(t, err)

	serverErr, ok := err.(*api.ServerError)
	require.True(t, ok)
	require.Equal(t, 400, serverErr.StatusCode)
	require.Equal(t, "oauth_token_not_found", serverErr.ErrorType)
	require.False(t, serverErr.IsUnauthenticated())
}

func TestHTTPClient_UnauthenticatedDetection(t *testing.T) {
	client, server := newTestClient(t)
	server.RespondJSON("/sessions/authenticate", 401, map[string]any{
		"error_type":    "session_not_found",
		"error_message": "session not found",
	})

	_, err := client.SessionsAuthenticate(context.Background(), &api.SessionsAuthenticateParams{
		SessionToken: "stale",
	})
	serverErr, ok := err.(*api.ServerError)
	require.True(t, ok)
	require.True(t, serverErr.IsUnauthenticated())
}

func TestHTTPClient_B2BMFAShape(t *testing.T) {
	client, server := newTestClient(t)
	server.RespondJSON("/b2b/passwords/authenticate", 200, map[string]any{
		"member_authenticated":       false,
		"intermediate_session_token": "ist-1",
		"member":                     map[string]any{"member_id": "member-1"},
		"organization":               map[string]any{"organization_id": "org-1"},
		"mfa_required":               map[string]any{"allowed_methods": []string{"totp"}},
	})

	resp, err := client.B2BPasswordsAuthenticate(context.Background(), &api.B2BPasswordsAuthenticateParams{
		OrganizationID: "org-1",
		EmailAddress:   "m@example.com",
		Password:       "hunter2",
	})
	require.NoError(t, err)
	require.False(t, resp.MemberAuthenticated)
	require.Equal(t, "ist-1", resp.IntermediateSessionToken)
	require.NotNil(t, resp.MFARequired)
	require.Equal(t, []api.MFAMethod{api.MFAMethodTOTP}, resp.MFARequired.AllowedMethods)
}

func TestNewHTTPClient_Validation(t *testing.T) {
	_, err := api.NewHTTPClient("", "token")
	require.Error(t, err)

	_, err = api.NewHTTPClient("https://api.example.com", "")
	require.Error(t, err)
}
