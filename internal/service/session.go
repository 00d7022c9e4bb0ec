package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"carwash-service/internal/entity"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis so they survive restarts and the
// 24h expiry is enforced by the store itself.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Save(ctx context.Context, sid string, user entity.User, ttl time.Duration) error {
	user.Password = ""
	data, err := json.Marshal(sessionPayload{ID: user.ID, Username: user.Username, FullName: user.FullName})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+sid, data, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sid string) (*entity.User, error) {
	val, err := s.rdb.Get(ctx, sessionKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	payload := sessionPayload{}
	if err := json.Unmarshal([]byte(val), &payload); err != nil {
		return nil, err
	}
	return &entity.User{ID: payload.ID, Username: payload.Username, FullName: payload.FullName}, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+sid).Err()
}

// sessionPayload is stored instead of entity.User because User's password
// field is excluded from JSON and must never reach Redis anyway.
type sessionPayload struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}
