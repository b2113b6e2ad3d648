package cache

import (
	"context"
	"log"

	"budget/config"
)

// New 按配置创建缓存；Redis 不可用时退回进程内缓存
func New(ctx context.Context, cfg *config.Config) Cache {
	if cfg.Redis.Enabled {
		client, err := NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			log.Printf("缓存使用 Redis: %s", cfg.Redis.Addr)
			return NewRedisCache(client, cfg.Cache.Prefix, cfg.Cache.Version)
		}
		log.Printf("警告: %v，改用进程内缓存", err)
	}
	return NewMemoryCache(cfg.Cache.Prefix, cfg.Cache.Version, cfg.Cache.MaxEntries)
}
