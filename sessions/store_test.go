package sessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stytchauth/stytch-client-go/api"
	"github.com/stytchauth/stytch-client-go/sessions"
	fakestoragerepo "github.com/stytchauth/stytch-client-go/storage/repofake"
)

func newStore(t *testing.T, repo *fakestoragerepo.FakeStorageRepo) *sessions.Store {
	t.Helper()
	s, err := sessions.NewStore(context.Background(), repo)
	require.NoError(t, err)
	return s
}

func consumerIdentity() sessions.Identity {
	return sessions.Identity{
		UserID:       "user-123",
		SessionToken: "opaque-token",
		SessionJWT:   "header.payload.signature",
	}
}

func TestStore_UpdateAndCurrent(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())
	ctx := context.Background()

	require.Nil(t, s.Current())

	require.NoError(t, s.Update(ctx, consumerIdentity()))

	got := s.Current()
	require.NotNil(t, got)
	require.Equal(t, "user-123", got.UserID)
	require.Equal(t, "opaque-token", got.SessionToken)
	require.Equal(t, "header.payload.signature", got.SessionJWT)
	require.False(t, got.IsB2B())
}

func TestStore_UpdateRejectsPartialPair(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())
	ctx := context.Background()

	t.Run("missing jwt", func(t *testing.T) {
		err := s.Update(ctx, sessions.Identity{UserID: "u", SessionToken: "tok"})
		require.ErrorIs(t, err, sessions.ErrIncompleteIdentity)
	})

	t.Run("missing token", func(t *testing.T) {
		err := s.Update(ctx, sessions.Identity{UserID: "u", SessionJWT: "jwt"})
		require.ErrorIs(t, err, sessions.ErrIncompleteIdentity)
	})

	// Neither rejected update may leave partial state behind.
	require.Nil(t, s.Current())
}

func TestStore_PersistsAcrossRestart(t *testing.T) {
	repo := fakestoragerepo.NewFakeStorageRepo()
	ctx := context.Background()

	first := newStore(t, repo)
	require.NoError(t, first.Update(ctx, consumerIdentity()))
	require.NoError(t, first.SetLastAuthMethod(ctx, api.AuthMethodOAuth))

	second := newStore(t, repo)
	got := second.Current()
	require.NotNil(t, got)
	require.Equal(t, "user-123", got.UserID)
	require.Equal(t, api.AuthMethodOAuth, second.LastAuthMethod())
}

func TestStore_IntermediateTokenIsEphemeral(t *testing.T) {
	repo := fakestoragerepo.NewFakeStorageRepo()
	first := newStore(t, repo)

	first.SetIntermediateSessionToken("ist-abc")
	require.Equal(t, "ist-abc", first.IntermediateSessionToken())

	// A "restart" must lose the intermediate token.
	second := newStore(t, repo)
	require.Empty(t, second.IntermediateSessionToken())
}

func TestStore_UpdateDiscardsIntermediateToken(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())
	ctx := context.Background()

	s.SetIntermediateSessionToken("ist-abc")
	require.NoError(t, s.Update(ctx, consumerIdentity()))
	require.Empty(t, s.IntermediateSessionToken())
}

func TestStore_ClearRemovesEverything(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, consumerIdentity()))
	s.SetIntermediateSessionToken("ist-abc")

	require.NoError(t, s.Clear(ctx))
	require.Nil(t, s.Current())
	require.Empty(t, s.IntermediateSessionToken())
}

func TestStore_SubscribeReceivesTransitions(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())
	ctx := context.Background()

	events, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Update(ctx, consumerIdentity()))
	require.NoError(t, s.Clear(ctx))

	first := requireEvent(t, events)
	require.Equal(t, sessions.SessionAvailable, first.Kind)
	require.NotNil(t, first.Identity)
	require.Equal(t, "user-123", first.Identity.UserID)

	second := requireEvent(t, events)
	require.Equal(t, sessions.SessionUnavailable, second.Kind)
	require.Nil(t, second.Identity)
}

func TestStore_IdenticalUpdateFiresNothing(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, consumerIdentity()))

	events, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Update(ctx, consumerIdentity()))

	select {
	case e := <-events:
		t.Fatalf("unexpected event %v", e.Kind)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestStore_ClearWithoutSessionFiresNothing(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())

	events, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Clear(context.Background()))

	select {
	case e := <-events:
		t.Fatalf("unexpected event %v", e.Kind)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestStore_UnsubscribeStopsDelivery(t *testing.T) {
	s := newStore(t, fakestoragerepo.NewFakeStorageRepo())

	events, cancel := s.Subscribe()
	cancel()

	require.NoError(t, s.Update(context.Background(), consumerIdentity()))

	// The channel is closed on cancel; no event should have been delivered.
	_, open := <-events
	require.False(t, open)
}

func requireEvent(t *testing.T, events <-chan sessions.Event) sessions.Event {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for session event")
		return sessions.Event{}
	}
}
