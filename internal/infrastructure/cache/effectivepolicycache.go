package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prato-inc/prato/internal/application/policy/usecases"
	"github.com/prato-inc/prato/internal/domain/policy"
	"github.com/prato-inc/prato/internal/shared/logger"
)

const (
	effectivePolicyKeyPrefix = "policy:effective:"
	policyScanBatchSize      = 100
)

// RedisEffectivePolicyCache caches resolved effective policies per partner.
// Partner ID zero holds the global-only resolution.
type RedisEffectivePolicyCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisEffectivePolicyCache(client *redis.Client, ttl time.Duration, logger logger.Interface) usecases.EffectivePolicyCache {
	return &RedisEffectivePolicyCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisEffectivePolicyCache) key(partnerID uint) string {
	return fmt.Sprintf("%s%d", effectivePolicyKeyPrefix, partnerID)
}

func (c *RedisEffectivePolicyCache) Get(ctx context.Context, partnerID uint) (policy.EffectivePolicy, bool, error) {
	raw, err := c.client.Get(ctx, c.key(partnerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return policy.EffectivePolicy{}, false, nil
		}
		return policy.EffectivePolicy{}, false, fmt.Errorf("failed to get effective policy from cache: %w", err)
	}

	var ep policy.EffectivePolicy
	if err := json.Unmarshal(raw, &ep); err != nil {
		// A corrupted entry is treated as a miss; the next Set overwrites it.
		c.logger.Warnw("corrupted effective policy cache entry", "partner_id", partnerID, "error", err)
		return policy.EffectivePolicy{}, false, nil
	}
	return ep, true, nil
}

func (c *RedisEffectivePolicyCache) Set(ctx context.Context, partnerID uint, ep policy.EffectivePolicy) error {
	raw, err := json.Marshal(ep)
	if err != nil {
		return fmt.Errorf("failed to marshal effective policy: %w", err)
	}
	if err := c.client.Set(ctx, c.key(partnerID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache effective policy: %w", err)
	}
	return nil
}

func (c *RedisEffectivePolicyCache) Invalidate(ctx context.Context, partnerID uint) error {
	if err := c.client.Del(ctx, c.key(partnerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate effective policy: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached resolution. Used after global policy
// updates, where any partner's effective policy may have changed.
func (c *RedisEffectivePolicyCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, effectivePolicyKeyPrefix+"*", policyScanBatchSize).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= policyScanBatchSize {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate effective policies: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan effective policy keys: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate effective policies: %w", err)
		}
	}
	return nil
}
