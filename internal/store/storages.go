package store

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
)

// Storages is the constructed secret store together with whatever needs
// closing at shutdown.
type Storages struct {
	SecretStore SecretStore

	closers []io.Closer
}

// NewSecretStore builds the backend named by cfg.SecretsBackend, wraps the
// remote ones in a cache when cfg.CacheTTL is positive and seeds it with
// cfg.Secrets.
func NewSecretStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	var (
		secretStore SecretStore
		remote      bool
	)

	switch cfg.SecretsBackend {
	case config.BackendMemory, "":
		secretStore = NewMemorySecretStore()
	case config.BackendSQL:
		db, err := NewConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		storages.closers = append(storages.closers, db)

		if err := db.Migrate(); err != nil {
			_ = storages.Close()
			return nil, err
		}
		secretStore, remote = NewSQLSecretStore(db, log), true
	case config.BackendRedis:
		client, err := NewConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		redisStore, err := NewRedisSecretStore(client, cfg.Redis.Prefix)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		storages.closers = append(storages.closers, redisStore)
		secretStore, remote = redisStore, true
	case config.BackendAWS:
		awsStore, err := NewAWSSecretStore(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		secretStore, remote = awsStore, true
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.SecretsBackend)
	}

	if remote && cfg.CacheTTL > 0 {
		secretStore = NewCachedSecretStore(secretStore, cfg.CacheTTL)
	}

	if err := seedSecrets(ctx, secretStore, cfg.Secrets); err != nil {
		_ = storages.Close()
		return nil, err
	}

	log.Info().
		Str("backend", cfg.SecretsBackend).
		Int("seeded", len(cfg.Secrets)).
		Msg("secret store ready")

	storages.SecretStore = secretStore
	return storages, nil
}

// seedSecrets writes the configured issuer secrets in issuer order.
func seedSecrets(ctx context.Context, s SecretStore, secrets map[string]string) error {
	issuers := make([]string, 0, len(secrets))
	for issuer := range secrets {
		issuers = append(issuers, issuer)
	}
	sort.Strings(issuers)

	for _, issuer := range issuers {
		if err := s.SetSecret(ctx, issuer, secrets[issuer]); err != nil {
			return fmt.Errorf("error seeding secret for %s: %w", issuer, err)
		}
	}

	return nil
}

// Close releases backend connections.
func (s *Storages) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
