package auth

import (
	"context"
	"time"

	"perpus/internal/cache"
)

const blacklistKeyPrefix = "blacklist:token:"

// TokenStoreInterface defines the revocation store consulted on every
// authenticated request.
type TokenStoreInterface interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps revoked token IDs in Redis until their natural expiry.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// RevokeToken blacklists a token ID for the remainder of its lifetime.
func (s *TokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, blacklistKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsTokenRevoked checks whether a token ID has been blacklisted.
func (s *TokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, blacklistKeyPrefix+tokenID)
	if err != nil {
		return false, nil // fail safe
	}
	return data != nil, nil
}
