package services

import (
	"context"
	"sync"
	"time"

	"pms/models"

	"github.com/redis/go-redis/v9"
)

// TenantCache is the injectable tenant-by-slug cache. It is owned by the
// caller of the engine, never ambient global state inside it.
type TenantCache interface {
	Get(ctx context.Context, slug string) (*models.Tenant, bool)
	Set(ctx context.Context, slug string, tenant *models.Tenant, ttl time.Duration)
	Invalidate(ctx context.Context, slug string)
}

const tenantCacheKeyPrefix = "tenant:slug:"

// RedisTenantCache caches tenants in Redis.
type RedisTenantCache struct {
	rdb *redis.Client
}

func NewRedisTenantCache(rdb *redis.Client) *RedisTenantCache {
	return &RedisTenantCache{rdb: rdb}
}

func (c *RedisTenantCache) Get(ctx context.Context, slug string) (*models.Tenant, bool) {
	var tenant models.Tenant
	if err := GetFromRedis(ctx, c.rdb, tenantCacheKeyPrefix+slug, &tenant); err != nil || tenant.ID == 0 {
		return nil, false
	}
	return &tenant, true
}

func (c *RedisTenantCache) Set(ctx context.Context, slug string, tenant *models.Tenant, ttl time.Duration) {
	_ = SetToRedis(ctx, c.rdb, tenantCacheKeyPrefix+slug, tenant, ttl)
}

func (c *RedisTenantCache) Invalidate(ctx context.Context, slug string) {
	_ = DeleteFromRedis(ctx, c.rdb, tenantCacheKeyPrefix+slug)
}

// MemoryTenantCache is a process-local TTL cache, used in tests and as a
// fallback when Redis is not configured.
type MemoryTenantCache struct {
	mu    sync.RWMutex
	items map[string]memoryTenantEntry
}

type memoryTenantEntry struct {
	tenant    models.Tenant
	expiresAt time.Time
}

func NewMemoryTenantCache() *MemoryTenantCache {
	return &MemoryTenantCache{items: make(map[string]memoryTenantEntry)}
}

func (c *MemoryTenantCache) Get(ctx context.Context, slug string) (*models.Tenant, bool) {
	c.mu.RLock()
	entry, ok := c.items[slug]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.Invalidate(ctx, slug)
		return nil, false
	}
	tenant := entry.tenant
	return &tenant, true
}

func (c *MemoryTenantCache) Set(_ context.Context, slug string, tenant *models.Tenant, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[slug] = memoryTenantEntry{tenant: *tenant, expiresAt: time.Now().Add(ttl)}
}

func (c *MemoryTenantCache) Invalidate(_ context.Context, slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, slug)
}
