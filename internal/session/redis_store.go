package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/TypingSite/internal/apperrors"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a sliding expiry: every successful
// read pushes the expiry forward by ttl.
type RedisStore struct {
	db  *redis.Client
	ttl time.Duration
}

func NewRedisStore(db *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{db: db, ttl: ttl}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	data, err := encode(s)
	if err != nil {
		return apperrors.Storage("Error serializing session", err)
	}

	if err := r.db.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return apperrors.Storage("Error saving session", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := r.db.GetEx(ctx, sessionKey(id), r.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSessionNotFound
	} else if err != nil {
		return nil, apperrors.Storage("Error getting session", err)
	}

	s, err := decode(id, val)
	if err != nil {
		return nil, apperrors.Storage("Error decoding session", err)
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := r.db.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return apperrors.Storage("Error deleting session", err)
	}
	if n == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

func encode(s *Session) ([]byte, error) {
	return json.Marshal(payload{User: s.User})
}

func decode(id, raw string) (*Session, error) {
	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	if p.User.ID == 0 {
		return nil, fmt.Errorf("session %s has no user", id)
	}
	return &Session{ID: id, User: p.User}, nil
}
