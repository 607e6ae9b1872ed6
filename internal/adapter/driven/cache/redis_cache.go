package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/redis/go-redis/v9"
)

// RedisCache shares projections between API instances.
type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(addr string) repository.CacheRepository {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewRedisCacheWithClient wraps an existing client or cluster client.
func NewRedisCacheWithClient(client redis.Cmdable) repository.CacheRepository {
	return &RedisCache{client: client}
}

func (r *RedisCache) Get(ctx context.Context, key string) (entity.ProjectionResult, error) {
	var result entity.ProjectionResult

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return result, types.ErrCacheMiss
	}
	if err != nil {
		return result, fmt.Errorf("error reading %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(val, &result); err != nil {
		return result, fmt.Errorf("error decoding cached projection %s: %w", key, err)
	}
	return result, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, result entity.ProjectionResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("error encoding projection: %w", err)
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("error writing %s to redis: %w", key, err)
	}
	return nil
}
