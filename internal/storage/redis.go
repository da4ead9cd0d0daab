package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend mirrors the snapshot into Redis, one key per entry under a
// common prefix. Redis being a key-value store makes it a direct match for
// the persisted layout.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "ruangkelas"
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func (b *RedisBackend) key(name string) string {
	return fmt.Sprintf("%s:%s", b.prefix, name)
}

func (b *RedisBackend) Load(ctx context.Context) (Entries, error) {
	entries := make(Entries, len(SnapshotKeys))
	for _, name := range SnapshotKeys {
		raw, err := b.client.Get(ctx, b.key(name)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entries[name] = raw
	}
	return entries, nil
}

func (b *RedisBackend) Save(ctx context.Context, entries Entries) error {
	pipe := b.client.TxPipeline()
	for name, raw := range entries {
		pipe.Set(ctx, b.key(name), raw, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}
