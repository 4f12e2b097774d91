package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

const sessionTTL = 24 * time.Hour

// SessionStore maps opaque bearer tokens to identity keys in redis.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *SessionStore) Create(ctx context.Context, key identity.Key) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKey(token), string(key), sessionTTL).Err(); err != nil {
		return "", errors.Wrap(errors.CodeUnavailable, "failed to store session", err)
	}
	return token, nil
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (identity.Key, error) {
	val, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return "", errors.Unauthorized("session expired or unknown")
	}
	if err != nil {
		return "", errors.Wrap(errors.CodeUnavailable, "failed to resolve session", err)
	}
	// Sliding expiry, refreshed on every authenticated request.
	s.rdb.Expire(ctx, sessionKey(token), sessionTTL)
	return identity.Key(val), nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
