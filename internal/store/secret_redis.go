package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/models"
)

const defaultRedisPrefix = "route-loader:"

// RedisSecretStore keeps all issuer secrets in a single Redis hash named
// "<prefix>secrets", one field per issuer.
type RedisSecretStore struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

// storedSecret is the JSON document kept in each hash field.
type storedSecret struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRedisSecretStore wraps an existing client.
func NewRedisSecretStore(client *redis.Client, prefix string) (*RedisSecretStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}

	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	return &RedisSecretStore{
		client: client,
		key:    prefix + "secrets",
		now:    time.Now,
	}, nil
}

// NewConnectRedis dials Redis and verifies the connection with PING.
func NewConnectRedis(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis ping: %w", ErrStoreUnavailable, err)
	}

	return client, nil
}

func (s *RedisSecretStore) SetSecret(ctx context.Context, issuer, value string) error {
	if issuer == "" {
		return ErrEmptyIssuer
	}

	data, err := json.Marshal(storedSecret{Value: value, UpdatedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal secret: %w", err)
	}

	if err := s.client.HSet(ctx, s.key, issuer, data).Err(); err != nil {
		return fmt.Errorf("%w: failed to set %s: %w", ErrStoreUnavailable, issuer, err)
	}

	return nil
}

func (s *RedisSecretStore) GetSecret(ctx context.Context, issuer string) (models.Secret, bool, error) {
	if issuer == "" {
		return models.Secret{}, false, nil
	}

	raw, err := s.client.HGet(ctx, s.key, issuer).Result()
	if errors.Is(err, redis.Nil) {
		return models.Secret{}, false, nil
	}
	if err != nil {
		return models.Secret{}, false, fmt.Errorf("%w: failed to get %s: %w", ErrStoreUnavailable, issuer, err)
	}

	var stored storedSecret
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return models.Secret{}, false, fmt.Errorf("failed to unmarshal stored secret: %w", err)
	}

	return models.Secret{Issuer: issuer, Value: stored.Value, UpdatedAt: stored.UpdatedAt}, true, nil
}

// Close releases the underlying client.
func (s *RedisSecretStore) Close() error {
	return s.client.Close()
}
