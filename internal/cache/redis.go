// Package cache is a TTL key/value store backed by Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const scanBatch = 100

var (
	ErrCacheMiss  = errors.New("cache miss")
	ErrCacheRead  = errors.New("cache read failed")
	ErrCacheWrite = errors.New("cache write failed")
)

type Options struct {
	Address      string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Redis struct {
	client redis.UniversalClient
}

func New(opts Options) *Redis {
	return NewFromClient(redis.NewClient(&redis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}))
}

func NewFromClient(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Get returns ErrCacheMiss when key is absent and ErrCacheRead on any other failure.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		zap.L().Error("can't read cache key", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		zap.L().Error("can't write cache key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

// Scan collects every key matching pattern.
func (r *Redis) Scan(ctx context.Context, pattern string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			zap.L().Error("can't scan cache keys", zap.String("pattern", pattern), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrCacheRead, err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
