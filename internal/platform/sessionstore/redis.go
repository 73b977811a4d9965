package sessionstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"learnpath_backend/internal/common"
)

const keyPrefix = "session:"

// Store is the server-side session registry. The signed cookie proves who
// issued a session id; the store decides whether that session is still
// alive, which is what makes logout effective against a replayed cookie.
type Store interface {
	Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return rdb, nil
}

func (s *redisStore) Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+sessionID, userID, ttl).Err()
}

// Get returns the user id bound to the session, or common.ErrNotFound when
// the session was revoked or expired.
func (s *redisStore) Get(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrNotFound
		}
		return "", err
	}
	return userID, nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}
