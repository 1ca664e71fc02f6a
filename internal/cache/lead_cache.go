package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/agenciaflow/backoffice/internal/domain"
)

const cachedLeadTimeToLive = 10 * time.Minute

// LeadCache caches single-lead lookups. A nil, nil return means miss.
type LeadCache interface {
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	Cache(ctx context.Context, lead *domain.Lead) error
	EvictByID(ctx context.Context, id string) error
}

type redisLeadCache struct {
	client *redis.Client
}

// NewRedisLeadCache builds a Redis-backed lead cache.
func NewRedisLeadCache(client *redis.Client) LeadCache {
	return &redisLeadCache{client: client}
}

func (r *redisLeadCache) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var lead domain.Lead
	if err := msgpack.Unmarshal([]byte(res), &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *redisLeadCache) Cache(ctx context.Context, lead *domain.Lead) error {
	encoded, err := msgpack.Marshal(lead)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(lead.ID), encoded, cachedLeadTimeToLive).Err()
}

func (r *redisLeadCache) EvictByID(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *redisLeadCache) key(id string) string {
	return fmt.Sprintf("lead:%s", id)
}
