package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore keeps admin session tokens in Redis so a dashboard login
// survives until its TTL runs out.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func (s *SessionStore) sessionKey(token string) string {
	return "admin_session:" + token
}

func (s *SessionStore) Create(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.Client.Set(ctx, s.sessionKey(token), "1", s.TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *SessionStore) Exists(ctx context.Context, token string) (bool, error) {
	res, err := s.Client.Exists(ctx, s.sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}
