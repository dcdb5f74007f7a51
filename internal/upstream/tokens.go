package upstream

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// TokenStore holds the access/refresh token pair. It is the only shared
// state in the client core: every outgoing request reads it and the
// refresh flow rewrites it.
type TokenStore interface {
	Tokens(ctx context.Context) (access, refresh string, err error)
	Save(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

const (
	accessTokenKey  = "auth:access_token"
	refreshTokenKey = "auth:refresh_token"
)

// RedisTokenStore persists the token pair in redis so the gateway survives
// restarts without forcing a re-login.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore wraps a redis client as a TokenStore.
func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Tokens(ctx context.Context) (string, string, error) {
	access, err := s.client.Get(ctx, accessTokenKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", "", fmt.Errorf("read access token: %w", err)
	}
	refresh, err := s.client.Get(ctx, refreshTokenKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", "", fmt.Errorf("read refresh token: %w", err)
	}
	return access, refresh, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, access, refresh string) error {
	if err := s.client.Set(ctx, accessTokenKey, access, 0).Err(); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if refresh != "" {
		if err := s.client.Set(ctx, refreshTokenKey, refresh, 0).Err(); err != nil {
			return fmt.Errorf("save refresh token: %w", err)
		}
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, accessTokenKey, refreshTokenKey).Err(); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

// MemoryTokenStore keeps the pair in process memory. Used in tests and in
// library mode where no redis is configured.
type MemoryTokenStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Tokens(ctx context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.refresh, nil
}

func (s *MemoryTokenStore) Save(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	if refresh != "" {
		s.refresh = refresh
	}
	return nil
}

func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return nil
}
