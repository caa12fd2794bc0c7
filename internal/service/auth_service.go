package service

import (
	"context"
	"errors"
	"log"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService gates the admin dashboard. Credentials come from configuration
// at startup; a successful login stores a session token with a TTL.
type AuthService struct {
	username string
	password string
	sessions SessionStore
}

func NewAuthService(username, password string, sessions SessionStore) *AuthService {
	return &AuthService{username: username, password: password, sessions: sessions}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username || password != s.password {
		return "", ErrInvalidCredentials
	}
	return s.sessions.Create(ctx)
}

func (s *AuthService) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := s.sessions.Exists(ctx, token)
	if err != nil {
		log.Printf("[auth-svc] session lookup failed: %v", err)
		return false
	}
	return ok
}
