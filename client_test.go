package stytch_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	stytch "github.com/stytchauth/stytch-client-go"
	"github.com/stytchauth/stytch-client-go/api"
	fakeapiservice "github.com/stytchauth/stytch-client-go/api/servicefake"
	"github.com/stytchauth/stytch-client-go/deeplink"
	"github.com/stytchauth/stytch-client-go/flows"
	fakestoragerepo "github.com/stytchauth/stytch-client-go/storage/repofake"
)

func TestNewClient_RequiresPublicToken(t *testing.T) {
	_, err := stytch.NewClient(context.Background(), stytch.Config{})
	require.Error(t, err)
}

func TestClient_PasswordLoginEndToEnd(t *testing.T) {
	service := fakeapiservice.NewFakeService()
	service.AuthenticateResponse = &api.AuthenticateResponse{
		UserID:       "user-1",
		SessionToken: "opaque-1",
		SessionJWT:   "jwt-1",
	}

	client, err := stytch.NewClient(context.Background(), stytch.Config{
		PublicToken: "public-token-test",
	}, stytch.WithService(service))
	require.NoError(t, err)

	outcome, err := client.Flows().AuthenticatePassword(context.Background(), "u@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, flows.OutcomeFullyAuthenticated, outcome.Kind)

	identity := client.Sessions().Current()
	require.NotNil(t, identity)
	require.Equal(t, "user-1", identity.UserID)
	require.Equal(t, "opaque-1", identity.SessionToken)
}

func TestClient_DeepLinkDispatch(t *testing.T) {
	service := fakeapiservice.NewFakeService()
	service.AuthenticateResponse = &api.AuthenticateResponse{
		UserID:       "user-1",
		SessionToken: "opaque-1",
		SessionJWT:   "jwt-1",
	}

	client, err := stytch.NewClient(context.Background(), stytch.Config{
		PublicToken:    "public-token-test",
		CallbackScheme: "myapp",
	}, stytch.WithService(service))
	require.NoError(t, err)

	u, err := url.Parse("myapp://callback?token=ml-token&token_type=magic_links")
	require.NoError(t, err)

	result, err := client.HandleDeepLink(context.Background(), u)
	require.NoError(t, err)
	require.Equal(t, deeplink.Handled, result.Disposition)
	require.Equal(t, []string{"MagicLinksAuthenticate"}, service.Calls())

	require.NotNil(t, client.Sessions().Current())
}

func TestClient_DeepLinkDisabledWithoutScheme(t *testing.T) {
	client, err := stytch.NewClient(context.Background(), stytch.Config{
		PublicToken: "public-token-test",
	}, stytch.WithService(fakeapiservice.NewFakeService()))
	require.NoError(t, err)

	u, _ := url.Parse("myapp://callback?token=T&token_type=magic_links")
	result, err := client.HandleDeepLink(context.Background(), u)
	require.NoError(t, err)
	require.Equal(t, deeplink.NotHandled, result.Disposition)
}

func TestClient_SessionSurvivesRestartWithSharedStorage(t *testing.T) {
	repo := fakestoragerepo.NewFakeStorageRepo()
	service := fakeapiservice.NewFakeService()
	service.AuthenticateResponse = &api.AuthenticateResponse{
		UserID:       "user-1",
		SessionToken: "opaque-1",
		SessionJWT:   "jwt-1",
	}

	first, err := stytch.NewClient(context.Background(), stytch.Config{
		PublicToken: "public-token-test",
	}, stytch.WithService(service), stytch.WithStorage(repo))
	require.NoError(t, err)

	_, err = first.Flows().AuthenticatePassword(context.Background(), "u@example.com", "hunter2")
	require.NoError(t, err)

	// A new client over the same storage hydrates the session.
	second, err := stytch.NewClient(context.Background(), stytch.Config{
		PublicToken: "public-token-test",
	}, stytch.WithService(fakeapiservice.NewFakeService()), stytch.WithStorage(repo))
	require.NoError(t, err)

	identity := second.Sessions().Current()
	require.NotNil(t, identity)
	require.Equal(t, "user-1", identity.UserID)
}
