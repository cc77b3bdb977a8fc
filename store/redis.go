package store

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// RedisBackend keeps each cart payload as a plain Redis string.
type RedisBackend struct {
	rdb *goredis.Client
}

func NewRedisBackend(rdb *goredis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := b.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, payload []byte) error {
	return b.rdb.Set(ctx, key, payload, 0).Err()
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.rdb.Del(ctx, key).Err()
}
