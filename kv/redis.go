package kv

import (
	"context"

	redis "github.com/go-redis/redis/v8"
)

// RedisStore backs the record namespace with a redis instance
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// MSet writes all pairs in one transactional pipeline so a pair of index
// writes (both sides of a chat, both buddy lists) lands together
func (s *RedisStore) MSet(ctx context.Context, pairs ...Pair) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, p := range pairs {
			if err := pipe.Set(ctx, p.Key, p.Value, 0).Err(); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
