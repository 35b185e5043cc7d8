package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"naiyuan-admin/internal/platform/obs"
	"naiyuan-admin/internal/ports"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "naiyuan:admin:session:"

// RedisStore keeps each session as a JSON string whose key expires with
// the session.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, id string) (_ *ports.Session, err error) {
	defer obs.Time(ctx, "sessions.redis.Get")(&err)

	b, err := s.rdb.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis session get: %w", err)
	}

	var sess ports.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("redis session decode: %w", err)
	}
	if !sess.ExpiresAt.After(time.Now()) {
		return nil, ports.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *ports.Session) (err error) {
	defer obs.Time(ctx, "sessions.redis.Save")(&err)

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redis session encode: %w", err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+sess.ID, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis session set: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	return nil
}
