package snapshot

import (
	"context"
	"errors"
	"fmt"

	redisclient "github.com/akomcomputer/shopsuite-backend/pkg/redis"
)

// RedisBackend stores the snapshot in a namespaced Redis key with no TTL.
type RedisBackend struct {
	client *redisclient.Client
}

func NewRedisBackend(client *redisclient.Client) (*RedisBackend, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisBackend{client: client}, nil
}

func (b *RedisBackend) Write(ctx context.Context, key string, payload []byte) error {
	return b.client.Set(ctx, b.client.SnapshotKey(key), payload, 0)
}

func (b *RedisBackend) Read(ctx context.Context, key string) ([]byte, error) {
	value, err := b.client.Get(ctx, b.client.SnapshotKey(key))
	if err != nil {
		if errors.Is(err, redisclient.ErrNotFound) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return []byte(value), nil
}

func (b *RedisBackend) Clear(ctx context.Context, key string) error {
	return b.client.Del(ctx, b.client.SnapshotKey(key))
}
