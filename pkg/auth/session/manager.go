package session

import (
	"context"
	"strings"
	"time"

	"github.com/ers220/component-compass/pkg/errors"
	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
)

// Store is the server-side session backend. The redis client satisfies it in
// deployments with CC_REDIS_URL set; MemoryStore covers single-process runs.
type Store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SessionKey(id string) string
	CartKey(id string) string
}

// Manager tracks live sessions and the cart blob attached to each one.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &Manager{store: store, ttl: ttl}
}

// NewAccessID generates the session identifier embedded as the JWT jti.
func NewAccessID() string {
	return uuid.NewString()
}

// Start registers a session so later requests can verify it was not revoked.
func (m *Manager) Start(ctx context.Context, accessID string) error {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return errors.New(errors.CodeValidation, "session id is required")
	}
	if err := m.store.Set(ctx, m.store.SessionKey(accessID), "1", m.ttl); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "storing session")
	}
	return nil
}

// HasSession reports whether the session is still live.
func (m *Manager) HasSession(ctx context.Context, accessID string) (bool, error) {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return false, nil
	}
	_, err := m.store.Get(ctx, m.store.SessionKey(accessID))
	if err != nil {
		if err == redislib.Nil {
			return false, nil
		}
		return false, errors.Wrap(errors.CodeDependency, err, "reading session")
	}
	return true, nil
}

// Revoke tears down the session and any cart saved under it.
func (m *Manager) Revoke(ctx context.Context, accessID string) error {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return nil
	}
	keys := []string{m.store.SessionKey(accessID), m.store.CartKey(accessID)}
	if err := m.store.Del(ctx, keys...); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "revoking session")
	}
	return nil
}

// SaveCart overwrites the cart blob for the session.
func (m *Manager) SaveCart(ctx context.Context, accessID string, payload string) error {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return errors.New(errors.CodeValidation, "session id is required")
	}
	if err := m.store.Set(ctx, m.store.CartKey(accessID), payload, m.ttl); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "storing cart")
	}
	return nil
}

// FetchCart returns the cart blob, or empty string when none was saved.
func (m *Manager) FetchCart(ctx context.Context, accessID string) (string, error) {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return "", nil
	}
	payload, err := m.store.Get(ctx, m.store.CartKey(accessID))
	if err != nil {
		if err == redislib.Nil {
			return "", nil
		}
		return "", errors.Wrap(errors.CodeDependency, err, "reading cart")
	}
	return payload, nil
}

// ClearCart drops the cart blob but leaves the session live.
func (m *Manager) ClearCart(ctx context.Context, accessID string) error {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return nil
	}
	if err := m.store.Del(ctx, m.store.CartKey(accessID)); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "clearing cart")
	}
	return nil
}
