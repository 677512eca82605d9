package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-route-loader/models"
)

// CachedSecretStore is a read-through cache in front of a slower
// [SecretStore]. Found secrets are kept for ttl; absent issuers are not
// cached so that a freshly provisioned issuer is visible immediately.
// Writes go to the backend first and then refresh the cache entry.
//
// Every write bumps the issuer's generation; a read that went to the
// backend only fills the cache if no write happened meanwhile, so a
// rotated-out secret is never cached again.
type CachedSecretStore struct {
	next SecretStore
	ttl  time.Duration
	now  func() time.Time

	mu          sync.RWMutex
	entries     map[string]cachedSecret
	generations map[string]uint64
}

type cachedSecret struct {
	secret    models.Secret
	expiresAt time.Time
}

// NewCachedSecretStore wraps next with a cache of the given ttl.
func NewCachedSecretStore(next SecretStore, ttl time.Duration) *CachedSecretStore {
	return &CachedSecretStore{
		next:        next,
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[string]cachedSecret),
		generations: make(map[string]uint64),
	}
}

func (c *CachedSecretStore) SetSecret(ctx context.Context, issuer, value string) error {
	if err := c.next.SetSecret(ctx, issuer, value); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[issuer]++
	now := c.now()
	c.entries[issuer] = cachedSecret{
		secret:    models.Secret{Issuer: issuer, Value: value, UpdatedAt: now},
		expiresAt: now.Add(c.ttl),
	}

	return nil
}

func (c *CachedSecretStore) GetSecret(ctx context.Context, issuer string) (models.Secret, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[issuer]
	generation := c.generations[issuer]
	c.mu.RUnlock()

	if ok && c.now().Before(entry.expiresAt) {
		return entry.secret, true, nil
	}

	secret, found, err := c.next.GetSecret(ctx, issuer)
	if err != nil || !found {
		return secret, found, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[issuer] != generation {
		if entry, ok := c.entries[issuer]; ok {
			return entry.secret, true, nil
		}
		return secret, true, nil
	}
	c.entries[issuer] = cachedSecret{secret: secret, expiresAt: c.now().Add(c.ttl)}

	return secret, true, nil
}
