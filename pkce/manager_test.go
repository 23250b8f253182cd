package pkce_test

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stytchauth/stytch-client-go/pkce"
	fakestoragerepo "github.com/stytchauth/stytch-client-go/storage/repofake"
)

func newManager(t *testing.T, kind pkce.SessionKind) *pkce.Manager {
	t.Helper()
	m, err := pkce.NewManager(fakestoragerepo.NewFakeStorageRepo(), kind)
	require.NoError(t, err)
	return m
}

func TestGeneratePair_Shape(t *testing.T) {
	pair, err := pkce.GeneratePair()
	require.NoError(t, err)

	// 32 random bytes base64url-encoded without padding is 43 chars.
	require.Len(t, pair.CodeVerifier, 43)
	require.Equal(t, pkce.MethodS256, pair.Method)

	sum := sha256.Sum256([]byte(pair.CodeVerifier))
	require.Equal(t, base64.RawURLEncoding.EncodeToString(sum[:]), pair.CodeChallenge)
}

func TestManager_GenerateAndRetrieve(t *testing.T) {
	m := newManager(t, pkce.KindConsumer)
	ctx := context.Background()

	stored, err := m.GenerateAndStore(ctx)
	require.NoError(t, err)

	got, err := m.Retrieve(ctx)
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

func TestManager_OnlyLatestPairPending(t *testing.T) {
	m := newManager(t, pkce.KindConsumer)
	ctx := context.Background()

	first, err := m.GenerateAndStore(ctx)
	require.NoError(t, err)
	second, err := m.GenerateAndStore(ctx)
	require.NoError(t, err)
	require.NotEqual(t, first.CodeVerifier, second.CodeVerifier)

	got, err := m.Retrieve(ctx)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestManager_RetrieveEmpty(t *testing.T) {
	m := newManager(t, pkce.KindB2B)

	_, err := m.Retrieve(context.Background())
	require.ErrorIs(t, err, pkce.ErrNotFound)
}

func TestManager_RetrieveDoesNotConsume(t *testing.T) {
	m := newManager(t, pkce.KindConsumer)
	ctx := context.Background()

	_, err := m.GenerateAndStore(ctx)
	require.NoError(t, err)

	_, err = m.Retrieve(ctx)
	require.NoError(t, err)
	_, err = m.Retrieve(ctx)
	require.NoError(t, err)
}

func TestManager_ClearIsIdempotent(t *testing.T) {
	m := newManager(t, pkce.KindConsumer)
	ctx := context.Background()

	_, err := m.GenerateAndStore(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx))
	require.NoError(t, m.Clear(ctx))

	_, err = m.Retrieve(ctx)
	require.ErrorIs(t, err, pkce.ErrNotFound)
}

func TestManager_KindsAreIsolated(t *testing.T) {
	repo := fakestoragerepo.NewFakeStorageRepo()
	consumer, err := pkce.NewManager(repo, pkce.KindConsumer)
	require.NoError(t, err)
	b2b, err := pkce.NewManager(repo, pkce.KindB2B)
	require.NoError(t, err)

	ctx := context.Background()
	cPair, err := consumer.GenerateAndStore(ctx)
	require.NoError(t, err)
	bPair, err := b2b.GenerateAndStore(ctx)
	require.NoError(t, err)

	require.NoError(t, consumer.Clear(ctx))

	got, err := b2b.Retrieve(ctx)
	require.NoError(t, err)
	require.Equal(t, bPair, got)
	require.NotEqual(t, cPair.CodeVerifier, bPair.CodeVerifier)
}

func TestManager_ConcurrentGenerateLeavesOneConsistentPair(t *testing.T) {
	m := newManager(t, pkce.KindConsumer)
	ctx := context.Background()

	const goroutines = 16
	results := make([]pkce.CodePair, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pair, err := m.GenerateAndStore(ctx)
			require.NoError(t, err)
			results[i] = pair
		}(i)
	}
	wg.Wait()

	got, err := m.Retrieve(ctx)
	require.NoError(t, err)

	// Whichever call won, the stored pair must be one of the generated
	// pairs in full, never an interleaving of two.
	require.Contains(t, results, got)
	sum := sha256.Sum256([]byte(got.CodeVerifier))
	require.Equal(t, base64.RawURLEncoding.EncodeToString(sum[:]), got.CodeChallenge)
}

func TestNewManager_Validation(t *testing.T) {
	_, err := pkce.NewManager(nil, pkce.KindConsumer)
	require.Error(t, err)

	_, err = pkce.NewManager(fakestoragerepo.NewFakeStorageRepo(), pkce.SessionKind("other"))
	require.Error(t, err)
}
