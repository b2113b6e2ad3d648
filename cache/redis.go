package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache 基于 Redis 的缓存，条目同时设置 Redis 过期时间
type RedisCache struct {
	client  *redis.Client
	prefix  string
	version string
	now     func() time.Time
}

// NewRedisClient 创建 Redis 客户端并检查连通性
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("连接 Redis 失败: %w", err)
	}
	return client, nil
}

// NewRedisCache 创建 Redis 缓存
func NewRedisCache(client *redis.Client, prefix, version string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, version: version, now: time.Now}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) bool {
	full := c.prefix + key
	raw, err := c.client.Get(ctx, full).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("警告: 读取缓存失败 %s: %v", full, err)
		}
		return false
	}
	if !decode(raw, c.version, c.now(), dest) {
		c.client.Del(ctx, full)
		return false
	}
	return true
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := encode(value, ttl, c.version, c.now())
	if err != nil {
		log.Printf("警告: 缓存写入失败 %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		log.Printf("警告: 缓存写入失败 %s: %v", key, err)
	}
}

func (c *RedisCache) Clear(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		log.Printf("警告: 清除缓存失败 %s: %v", key, err)
	}
}

func (c *RedisCache) ClearAll(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("警告: 扫描缓存失败: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("警告: 清除缓存失败: %v", err)
	}
}
