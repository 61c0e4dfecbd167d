package kv

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps each state document in a Redis string key.
type RedisBackend struct {
	conn *redis.Client
}

func NewRedisBackend(addr string) (*RedisBackend, error) {
	conn := redis.NewClient(&redis.Options{Addr: addr})
	if err := conn.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisBackend{conn: conn}, nil
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.conn.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	return r.conn.Set(ctx, key, value, 0).Err()
}

func (r *RedisBackend) Name() string { return "redis" }
