package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-route-loader/models"
)

// MemorySecretStore keeps issuer secrets in a map guarded by a RWMutex.
// The zero value is not usable; construct it with [NewMemorySecretStore].
type MemorySecretStore struct {
	mu      sync.RWMutex
	secrets map[string]models.Secret
	now     func() time.Time
}

// NewMemorySecretStore returns an empty in-process store.
func NewMemorySecretStore() *MemorySecretStore {
	return &MemorySecretStore{
		secrets: make(map[string]models.Secret),
		now:     time.Now,
	}
}

func (s *MemorySecretStore) SetSecret(ctx context.Context, issuer, value string) error {
	if issuer == "" {
		return ErrEmptyIssuer
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.secrets[issuer] = models.Secret{Issuer: issuer, Value: value, UpdatedAt: s.now()}
	return nil
}

func (s *MemorySecretStore) GetSecret(ctx context.Context, issuer string) (models.Secret, bool, error) {
	if issuer == "" {
		return models.Secret{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return models.Secret{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	secret, ok := s.secrets[issuer]
	return secret, ok, nil
}
