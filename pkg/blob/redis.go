package blob

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps blobs in Redis. Entries are written without expiry; the
// category store decides staleness from its own metadata, not from key TTLs.
type RedisStore struct {
	cli    *redis.Client
	prefix string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func NewRedisStore(cfg RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return &RedisStore{cli: rdb, prefix: cfg.Prefix}
}

func (r *RedisStore) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *RedisStore) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.cli.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (r *RedisStore) SetBytes(ctx context.Context, key string, value []byte) error {
	return r.cli.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisStore) Close() error {
	return r.cli.Close()
}
