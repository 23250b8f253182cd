package redisrepo_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/stytchauth/stytch-client-go/storage"
	"github.com/stytchauth/stytch-client-go/storage/redisrepo"
)

func newTestRepo(t *testing.T) *redisrepo.RedisRepo {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo, err := redisrepo.New(client, "stytch-test")
	require.NoError(t, err)
	return repo
}

func TestRedisRepo_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "session", `{"token":"abc"}`))

	got, err := repo.Get(ctx, "session")
	require.NoError(t, err)
	require.Equal(t, `{"token":"abc"}`, got)
}

func TestRedisRepo_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRedisRepo_DeleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "session", "v"))
	require.NoError(t, repo.Delete(ctx, "session"))
	require.NoError(t, repo.Delete(ctx, "session"))

	_, err := repo.Get(ctx, "session")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRedisRepo_RequiresClient(t *testing.T) {
	_, err := redisrepo.New(nil, "p")
	require.Error(t, err)
}
