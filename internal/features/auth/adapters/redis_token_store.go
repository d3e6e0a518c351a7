package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tracksolutions/internal/core/cache"
	"tracksolutions/internal/core/logger"
	"tracksolutions/internal/features/auth/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// RedisTokenStore implements ports.TokenStore on top of the cache adapter.
// Tokens are opaque uuids; the serialized identity lives server-side under
// the token's key, so a tampered or stale client value can never resurrect
// a session.
type RedisTokenStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisTokenStore creates a RedisTokenStore. A ttl of 0 means tokens
// never expire.
func NewRedisTokenStore(c cache.Cache, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{
		cache: c,
		ttl:   ttl,
	}
}

// Issue stores the identity under a fresh opaque token.
func (s *RedisTokenStore) Issue(ctx context.Context, identity domain.Identity) (string, error) {
	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to marshal identity: %w", err)
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, data, s.ttl); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return token, nil
}

// Validate resolves the identity behind a token. A missing key means the
// session expired or never existed; an undecodable payload degrades to an
// invalid session instead of failing hard.
func (s *RedisTokenStore) Validate(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, fmt.Errorf("failed to read session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		logger.Get().Warn("Discarding malformed session payload", zap.Error(err))
		return domain.Identity{}, domain.ErrInvalidToken
	}
	if !identity.Role.Valid() {
		logger.Get().Warn("Discarding session with unknown role", zap.String("role", string(identity.Role)))
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return identity, nil
}

// Revoke deletes the session behind the token.
func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.cache.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
