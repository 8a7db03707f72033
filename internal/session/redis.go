package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/farellandr/lokly/internal/models"
)

const keyPrefix = "session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: TTL}
}

func (s *RedisStore) Create(ctx context.Context, user *models.User) (*Session, error) {
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		User:      summarize(user),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, keyPrefix+sess.Token, data, s.ttl).Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
