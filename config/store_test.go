package config

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenBackendsMemory(t *testing.T) {
	b, err := OpenBackends(context.Background(), Config{StorageBackend: storage.BackendMemory}, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &storage.MemoryStore{}, b.Store)
	assert.Nil(t, b.Redis)
}

func TestOpenBackendsFile(t *testing.T) {
	b, err := OpenBackends(context.Background(), Config{StorageBackend: storage.BackendFile, DataDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()
	require.NoError(t, b.Store.Set(ctx, "session:abc:cart", []byte(`[]`)))
	got, err := b.Store.Get(ctx, "session:abc:cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestOpenBackendsRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	b, err := OpenBackends(context.Background(), Config{
		StorageBackend: storage.BackendRedis,
		RedisURL:       "redis://" + mr.Addr(),
	}, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	require.NotNil(t, b.Redis)
	require.NoError(t, b.Store.Set(context.Background(), "session:abc:user", []byte(`{}`)))
	assert.True(t, mr.Exists("farmfresh:session:abc:user"))
}

func TestOpenBackendsDialsRedisForRateLimiting(t *testing.T) {
	mr := miniredis.RunT(t)

	b, err := OpenBackends(context.Background(), Config{
		StorageBackend:   storage.BackendMemory,
		RedisURL:         "redis://" + mr.Addr(),
		RateLimitEnabled: true,
	}, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	assert.NotNil(t, b.Redis)
	assert.IsType(t, &storage.MemoryStore{}, b.Store)
}

func TestOpenBackendsErrors(t *testing.T) {
	_, err := OpenBackends(context.Background(), Config{StorageBackend: "dynamo"}, zap.NewNop())
	assert.ErrorContains(t, err, `unknown storage backend "dynamo"`)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenBackends(context.Background(), Config{
		StorageBackend: storage.BackendRedis,
		RedisURL:       "redis://" + addr,
	}, zap.NewNop())
	assert.Error(t, err)
}
