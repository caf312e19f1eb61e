package service

import (
	"context"
	"fmt"

	"order-store/internal/redisclient"
	"order-store/internal/util"

	"go.uber.org/zap"
)

func customerCacheKey(id int64) string { return fmt.Sprintf("customer:%d", id) }
func itemCacheKey(id int64) string     { return fmt.Sprintf("item:%d", id) }
func orderCacheKey(id int64) string    { return fmt.Sprintf("order:%d", id) }

// cacheGet reads key into dest. Returns false when the cache is disabled,
// the key is missing, or the read fails; the caller falls back to the store.
func cacheGet(ctx context.Context, cache *redisclient.Client, entity, key string, dest interface{}) bool {
	if cache == nil {
		return false
	}

	hit, err := cache.GetJSON(ctx, key, dest)
	if err != nil {
		util.GetLogger().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}

	if hit {
		util.CacheHitsTotal.WithLabelValues(entity).Inc()
	} else {
		util.CacheMissesTotal.WithLabelValues(entity).Inc()
	}
	return hit
}

func cacheSet(ctx context.Context, cache *redisclient.Client, key string, value interface{}) {
	if cache == nil {
		return
	}
	if err := cache.SetJSON(ctx, key, value); err != nil {
		util.GetLogger().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheDel(ctx context.Context, cache *redisclient.Client, keys ...string) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, keys...); err != nil {
		util.GetLogger().Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
