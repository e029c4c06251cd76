package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "generations:"

type redisDrive struct {
	rdb *redis.Client
}

// NewRedisDrive connects to the redis server described by a redis:// URL.
func NewRedisDrive(ctx context.Context, url string) (*redisDrive, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &redisDrive{rdb: rdb}, nil
}

func (r *redisDrive) Put(ctx context.Context, name string, data []byte) error {
	if err := r.rdb.Set(ctx, redisKeyPrefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("saving blob %q: %w", name, err)
	}
	return nil
}

func (r *redisDrive) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, redisKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("blob %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching blob %q: %w", name, err)
	}
	return data, nil
}

func (r *redisDrive) Close() error {
	return r.rdb.Close()
}
