package store

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSecretStore(t *testing.T) {
	// Skip test if Redis is not available
	client := redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:6379",
		DB:   3,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer client.FlushDB(ctx)

	s, err := NewRedisSecretStore(client, "test:")
	require.NoError(t, err)
	defer s.Close()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, s.SetSecret(ctx, "acme", "s3cr3t"))

		secret, ok, err := s.GetSecret(ctx, "acme")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "s3cr3t", secret.Value)
		assert.False(t, secret.UpdatedAt.IsZero())

		fields, err := client.HKeys(ctx, "test:secrets").Result()
		require.NoError(t, err)
		assert.Contains(t, fields, "acme")
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, s.SetSecret(ctx, "acme", "rotated"))

		secret, ok, err := s.GetSecret(ctx, "acme")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "rotated", secret.Value)
	})

	t.Run("GetNonExistent", func(t *testing.T) {
		_, ok, err := s.GetSecret(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestNewRedisSecretStore_RequiresClient(t *testing.T) {
	_, err := NewRedisSecretStore(nil, "")
	assert.Error(t, err)
}
