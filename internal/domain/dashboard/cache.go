package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"Rateio/internal/logger"

	goredis "github.com/go-redis/redis/v8"
)

// OverviewCache guarda a resposta do painel em duas camadas (memória e
// Redis). Client redis nil e cache nil são aceitos.
type OverviewCache struct {
	redis    *goredis.Client
	ttl      time.Duration
	memory   map[string]*cacheEntry
	memoryMu sync.RWMutex
}

type cacheEntry struct {
	overview *Overview
	cachedAt time.Time
}

func NewOverviewCache(redisClient *goredis.Client, ttl time.Duration) *OverviewCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &OverviewCache{
		redis:  redisClient,
		ttl:    ttl,
		memory: make(map[string]*cacheEntry),
	}
}

func (c *OverviewCache) Get(ctx context.Context, block string) *Overview {
	if c == nil {
		return nil
	}
	key := cacheKey(block)

	c.memoryMu.RLock()
	entry, ok := c.memory[key]
	c.memoryMu.RUnlock()
	if ok && time.Since(entry.cachedAt) <= c.ttl {
		return entry.overview
	}

	if c.redis == nil {
		return nil
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var overview Overview
	if err := json.Unmarshal(data, &overview); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("entrada de cache corrompida descartada")
		return nil
	}

	c.memoryMu.Lock()
	c.memory[key] = &cacheEntry{overview: &overview, cachedAt: time.Now()}
	c.memoryMu.Unlock()
	return &overview
}

func (c *OverviewCache) Set(ctx context.Context, block string, overview *Overview) error {
	if c == nil {
		return nil
	}
	key := cacheKey(block)

	c.memoryMu.Lock()
	c.memory[key] = &cacheEntry{overview: overview, cachedAt: time.Now()}
	c.memoryMu.Unlock()

	if c.redis == nil {
		return nil
	}
	data, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateAll esvazia as duas camadas.
func (c *OverviewCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	c.memoryMu.Lock()
	keys := make([]string, 0, len(c.memory))
	for key := range c.memory {
		keys = append(keys, key)
	}
	c.memory = make(map[string]*cacheEntry)
	c.memoryMu.Unlock()

	if c.redis == nil {
		return
	}
	if len(keys) == 0 {
		keys = []string{cacheKey("")}
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		logger.Warn().Err(err).Msg("falha ao invalidar cache do painel no redis")
	}
}

func cacheKey(block string) string {
	if block == "" {
		return "dashboard:overview"
	}
	return fmt.Sprintf("dashboard:overview:%s", block)
}
